package ec

import (
	"fmt"
	"math/big"
	"sync"
)

// definition describes how to construct one catalog curve. build may fail when
// the backing library does not provide the curve; such curves are skipped.
type definition struct {
	name  string
	build func(name string) (*Curve, error)
}

// primeCurve defines a Weierstrass curve from hex parameters. An a of "-3" is
// shorthand for p - 3.
func primeCurve(name, p, a, b string) definition {
	return definition{name: name, build: func(name string) (*Curve, error) {
		return newPrimeCurve(name, p, a, b)
	}}
}

// primeCurves are the SEC 2 and ANSI X9.62 prime-field curves, smallest first.
// secp224r1, prime256v1, secp384r1, secp521r1 and secp256k1 come from
// libraries; see nist.go and secp256k1.go.
var primeCurves = []definition{
	primeCurve("secp112r1",
		"DB7C2ABF62E35E668076BEAD208B",
		"DB7C2ABF62E35E668076BEAD2088",
		"659EF8BA043916EEDE8911702B22"),
	primeCurve("secp112r2",
		"DB7C2ABF62E35E668076BEAD208B",
		"6127C24C05F38A0AAAF65C0EF02C",
		"51DEF1815DB5ED74FCC34C85D709"),
	primeCurve("secp128r1",
		"FFFFFFFDFFFFFFFFFFFFFFFFFFFFFFFF",
		"-3",
		"E87579C11079F43DD824993C2CEE5ED3"),
	primeCurve("secp128r2",
		"FFFFFFFDFFFFFFFFFFFFFFFFFFFFFFFF",
		"D6031998D1B3BBFEBF59CC9BBFF9AEE1",
		"5EEEFCA380D02919DC2C6558BB6D8A5D"),
	primeCurve("secp160k1",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC73",
		"0",
		"7"),
	primeCurve("secp160r1",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7FFFFFFF",
		"-3",
		"1C97BEFC54BD7A8B65ACF89F81D4D4ADC565FA45"),
	primeCurve("secp160r2",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC73",
		"-3",
		"B4E134D3FB59EB8BAB57274904664D5AF50388BA"),
	primeCurve("secp192k1",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFEE37",
		"0",
		"3"),
	primeCurve("prime192v1",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF",
		"-3",
		"64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1"),
	primeCurve("prime192v2",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF",
		"-3",
		"CC22D6DFB95C6B25E49C0D6364A4E5980C393AA21668D953"),
	primeCurve("prime192v3",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF",
		"-3",
		"22123DC2395A05CAA7423DAECCC94760A7D462256BD56916"),
	primeCurve("secp224k1",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFE56D",
		"0",
		"5"),
	nistCurve("secp224r1", p224),
	primeCurve("prime239v1",
		"7FFFFFFFFFFFFFFFFFFFFFFF7FFFFFFFFFFF8000000000007FFFFFFFFFFF",
		"-3",
		"6B016C3BDCF18941D0D654921475CA71A9DB2FB27D1D37796185C2942C0A"),
	primeCurve("prime239v2",
		"7FFFFFFFFFFFFFFFFFFFFFFF7FFFFFFFFFFF8000000000007FFFFFFFFFFF",
		"-3",
		"617FAB6832576CBBFED50D99F0249C3FEE58B94BA0038C7AE84C8C832F2C"),
	primeCurve("prime239v3",
		"7FFFFFFFFFFFFFFFFFFFFFFF7FFFFFFFFFFF8000000000007FFFFFFFFFFF",
		"-3",
		"255705FA2A306654B1F4CB03D6A750A30C250102D4988717D9BA15AB6D3E"),
	secp256k1Curve("secp256k1"),
	nistCurve("prime256v1", p256),
	nistCurve("secp384r1", p384),
	nistCurve("secp521r1", p521),
}

// brainpoolCurves is filled in by brainpool.go unless built with the
// nobrainpool tag.
var brainpoolCurves []definition

// binaryCurveDef defines a curve over GF(2^m). exps lists the exponents of the
// reduction polynomial, highest first.
func binaryCurveDef(name string, exps []int, a, b string) definition {
	return definition{name: name, build: func(name string) (*Curve, error) {
		aa, err := parseHexParam(name, "a", a)
		if err != nil {
			return nil, err
		}
		bb, err := parseHexParam(name, "b", b)
		if err != nil {
			return nil, err
		}
		return &Curve{
			Name:    name,
			Field:   BinaryField,
			decoder: newBinaryCurve(newGF2m(exps...), aa, bb),
		}, nil
	}}
}

// binaryCurves are the SEC 2 curves over GF(2^m).
var binaryCurves = []definition{
	binaryCurveDef("sect113r1", []int{113, 9, 0},
		"003088250CA6E7C7FE649CE85820F7",
		"00E8BEE4D3E2260744188BE0E9C723"),
	binaryCurveDef("sect113r2", []int{113, 9, 0},
		"00689918DBEC7E5A0DD6DFC0AA55C7",
		"0095E9A9EC9B297BD4BF36E059184F"),
	binaryCurveDef("sect131r1", []int{131, 8, 3, 2, 0},
		"07A11B09A76B562144418FF3FF8C2570B8",
		"0217C05610884B63B9C6C7291678F9D341"),
	binaryCurveDef("sect131r2", []int{131, 8, 3, 2, 0},
		"03E5A88919D7CAFCBF415F07C2176573B2",
		"04B8266A46C55657AC734CE38F018F2192"),
	binaryCurveDef("sect163k1", []int{163, 7, 6, 3, 0}, "1", "1"),
	binaryCurveDef("sect163r1", []int{163, 7, 6, 3, 0},
		"07B6882CAAEFA84F9554FF8428BD88E246D2782AE2",
		"0713612DCDDCB40AAB946BDA29CA91F73AF958AFD9"),
	binaryCurveDef("sect163r2", []int{163, 7, 6, 3, 0},
		"1",
		"020A601907B8C953CA1481EB10512F78744A3205FD"),
	binaryCurveDef("sect193r1", []int{193, 15, 0},
		"0017858FEB7A98975169E171F77B4087DE098AC8A911DF7B01",
		"00FDFB49BFE6C3A89FACADAA7A1E5BBC7CC1C2E5D831478814"),
	binaryCurveDef("sect193r2", []int{193, 15, 0},
		"0163F35A5137C2CE3EA6ED8667190B0BC43ECD69977702709B",
		"00C9BB9E8927D4D64C377E2AB2856A5B16E3EFB7F61D4316AE"),
	binaryCurveDef("sect233k1", []int{233, 74, 0}, "0", "1"),
	binaryCurveDef("sect233r1", []int{233, 74, 0},
		"1",
		"0066647EDE6C332C7F8C0923BB58213B333B20E9CE4281FE115F7D8F90AD"),
	binaryCurveDef("sect239k1", []int{239, 158, 0}, "0", "1"),
	binaryCurveDef("sect283k1", []int{283, 12, 7, 5, 0}, "0", "1"),
	binaryCurveDef("sect283r1", []int{283, 12, 7, 5, 0},
		"1",
		"027B680AC8B8596DA5A4AF8A19A0303FCA97FD7645309FA2A581485AF6263E313B79A2F5"),
	binaryCurveDef("sect409k1", []int{409, 87, 0}, "0", "1"),
	binaryCurveDef("sect409r1", []int{409, 87, 0},
		"1",
		"0021A5C2C8EE9FEB5C4B9A753B7B476B7FD6422EF1F3DD674761FA99D6AC27C8A9A197B272822F6CD57A55AA4F50AE317B13545F"),
	binaryCurveDef("sect571k1", []int{571, 10, 5, 2, 0}, "0", "1"),
	binaryCurveDef("sect571r1", []int{571, 10, 5, 2, 0},
		"1",
		"02F40E7E2221F295DE297117B7F3D62F5C6A97FFCB8CEFF1CD6BA8CE4A9A18AD84FFABBD8EFA59332BE7AD6756A66E294AFD185A78FF12AA520E4DE739BACA0C7FFEFF7F2955727A"),
}

// x962BinaryCurves are the ANSI X9.62 curves over GF(2^m). Five of them have
// an even extension degree.
var x962BinaryCurves = []definition{
	binaryCurveDef("c2pnb163v1", []int{163, 8, 2, 1, 0},
		"72546B5435234A422E0789675F432C89435DE5242",
		"C9517D06D5240D3CFF38C74B20B6CD4D6F9DD4D9"),
	binaryCurveDef("c2pnb163v2", []int{163, 8, 2, 1, 0},
		"108B39E77C4B108BED981ED0E890E117C511CF072",
		"667ACEB38AF4E488C407433FFAE4F1C811638DF20"),
	binaryCurveDef("c2pnb163v3", []int{163, 8, 2, 1, 0},
		"7A526C63D3E25A256A007699F5447E32AE456B50E",
		"3F7061798EB99E238FD6F1BF95B48FEEB4854252B"),
	binaryCurveDef("c2pnb176v1", []int{176, 43, 2, 1, 0},
		"E4E6DB2995065C407D9D39B8D0967B96704BA8E9C90B",
		"5DDA470ABE6414DE8EC133AE28E9BBD7FCEC0AE0FFF2"),
	binaryCurveDef("c2tnb191v1", []int{191, 9, 0},
		"2866537B676752636A68F56554E12640276B649EF7526267",
		"2E45EF571F00786F67B0081B9495A3D95462F5DE0AA185EC"),
	binaryCurveDef("c2tnb191v2", []int{191, 9, 0},
		"401028774D7777C7B7666D1366EA432071274F89FF01E718",
		"620048D28BCBD03B6249C99182B7C8CD19700C362C46A01"),
	binaryCurveDef("c2tnb191v3", []int{191, 9, 0},
		"6C01074756099122221056911C77D77E77A777E7E7E77FCB",
		"71FE1AF926CF847989EFEF8DB459F66394D90F32AD3F15E8"),
	binaryCurveDef("c2pnb208w1", []int{208, 83, 2, 1, 0},
		"0",
		"C8619ED45A62E6212E1160349E2BFA844439FAFC2A3FD1638F9E"),
	binaryCurveDef("c2tnb239v1", []int{239, 36, 0},
		"32010857077C5431123A46B808906756F543423E8D27877578125778AC76",
		"790408F2EEDAF392B012EDEFB3392F30F4327C0CA3F31FC383C422AA8C16"),
	binaryCurveDef("c2tnb239v2", []int{239, 36, 0},
		"4230017757A767FAE42398569B746325D45313AF0766266479B75654E65F",
		"5037EA654196CFF0CD82B2C14A2FCF2E3FF8775285B545722F03EACDB74B"),
	binaryCurveDef("c2tnb239v3", []int{239, 36, 0},
		"1238774666A67766D6676F778E676B66999176666E687666D8766C66A9F",
		"6A941977BA9F6A435199ACFC51067ED587F519C5ECB541B8E44111DE1D40"),
	binaryCurveDef("c2pnb272w1", []int{272, 56, 3, 1, 0},
		"91A091F03B5FBA4AB2CCF49C4EDD220FB028712D42BE752B2C40094DBACDB586FB20",
		"7167EFC92BB2E3CE7C8AAAFF34E12A9C557003D7C73A6FAF003F99F6CC8482E540F7"),
	binaryCurveDef("c2pnb304w1", []int{304, 11, 2, 1, 0},
		"FD0D693149A118F651E6DCE6802085377E5F882D1B510B44160074C1288078365A0396C8E681",
		"BDDB97E555A50A908E43B01C798EA5DAA6788F1EA2794EFCF57166B8C14039601E55827340BE"),
	binaryCurveDef("c2tnb359v1", []int{359, 68, 0},
		"5667676A654B20754F356EA92017D946567C46675556F19556A04616B567D223A5E05656FB549016A96656A557",
		"2472E2D0197C49363F1FE7F5B6DB075D52B6947D135D8CA445805D39BC345626089687742B6329E70680231988"),
	binaryCurveDef("c2pnb368w1", []int{368, 85, 2, 1, 0},
		"E0D2EE25095206F5E2A4F9ED229F1F256E79A0E2B455970D8D0D865BD94778C576D62F0AB7519CCD2A1A906AE30D",
		"FC1217D4320A90452C760A58EDCD30C8DD069B3C34453837A34ED50CB54917E1C2112D84D164F444F8F74786046A"),
	binaryCurveDef("c2tnb431r1", []int{431, 120, 0},
		"1A827EF00DD6FC0E234CAF046C6A5D8A85395B236CC4AD2CF32A0CADBDC9DDF620B0EB9906D0957F6C6FEACD615468DF104DE296CD8F",
		"10D9B4A3D9047D8B154359ABFB1B7F5485B04CEB868237DDC9DEDA982A679A5A919B626D4E50A8DD731B107A9962381FB5D807BF2618"),
}

var otherCurves = []definition{
	ed25519Curve("ed25519"),
}

// Catalog is the ordered set of curves that could be constructed.
type Catalog struct {
	Curves []*Curve
	// Skipped maps curves that failed to construct to the reason.
	Skipped map[string]error
}

// definitions returns every curve definition in catalog order.
func definitions() []definition {
	defs := make([]definition, 0, len(primeCurves)+len(brainpoolCurves)+len(binaryCurves)+len(x962BinaryCurves)+len(otherCurves))
	defs = append(defs, primeCurves...)
	defs = append(defs, brainpoolCurves...)
	defs = append(defs, binaryCurves...)
	defs = append(defs, x962BinaryCurves...)
	defs = append(defs, otherCurves...)
	return defs
}

// NewCatalog constructs every known curve, skipping those that fail.
func NewCatalog() *Catalog {
	cat := &Catalog{Skipped: make(map[string]error)}
	for _, def := range definitions() {
		c, err := def.build(def.name)
		if err != nil {
			cat.Skipped[def.name] = err
			continue
		}
		cat.Curves = append(cat.Curves, c)
	}
	return cat
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// Lookup returns the named curve.
func (c *Catalog) Lookup(name string) (*Curve, bool) {
	for _, curve := range c.Curves {
		if curve.Name == name {
			return curve, true
		}
	}
	return nil, false
}

// Match tries x against every curve in catalog order and returns all hits as
// "<curve> <param>" or "<curve> point". The point test uses the minimal
// big-endian magnitude of x as the octet string.
func (c *Catalog) Match(x *big.Int) []string {
	var hits []string
	enc := x.Bytes()
	for _, curve := range c.Curves {
		for _, p := range curve.Params() {
			if x.Cmp(p.Value) == 0 {
				hits = append(hits, curve.Name+" "+p.Name)
			}
		}
		if curve.DecodePoint(enc) == nil {
			hits = append(hits, curve.Name+" point")
		}
	}
	return hits
}

func newPrimeCurve(name, p, a, b string) (*Curve, error) {
	pp, err := parseHexParam(name, "p", p)
	if err != nil {
		return nil, err
	}
	// A mistyped field prime would make the square root search meaningless.
	if !pp.ProbablyPrime(20) {
		return nil, fmt.Errorf("%s: field modulus is not prime", name)
	}

	var aa *big.Int
	if a == "-3" {
		aa = new(big.Int).Sub(pp, big.NewInt(3))
	} else if aa, err = parseHexParam(name, "a", a); err != nil {
		return nil, err
	}
	bb, err := parseHexParam(name, "b", b)
	if err != nil {
		return nil, err
	}
	return weierstrassCurve(name, pp, aa, bb), nil
}

func weierstrassCurve(name string, p, a, b *big.Int) *Curve {
	return &Curve{
		Name:    name,
		Field:   PrimeField,
		P:       p,
		A:       a,
		B:       b,
		decoder: newWeierstrass(p, a, b),
	}
}

func parseHexParam(curve, param, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%s: invalid %s parameter %q", curve, param, s)
	}
	return v, nil
}
