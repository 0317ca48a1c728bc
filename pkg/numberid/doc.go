// Package numberid identifies what cryptographic artifact a big integer might
// be: its size, whether it is prime, which digest sizes it matches, whether it
// is a parameter or encoded point of a well-known elliptic curve, and whether
// it appears in a reference file of known numbers.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/numberid/pkg/numberid"
//
//	client := numberid.NewClient().WithOutputs(numberid.OutputDecimal)
//
//	results, err := client.Classify("0x1d", numberid.FormatHex, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    if r.Err != nil {
//	        fmt.Printf("%s: error: %v\n", r.Name, r.Err)
//	        continue
//	    }
//	    fmt.Println(r.Report)
//	}
//
// # Registries and Sessions
//
// The default registry holds the bits, bytes, prime, ec, hash and match
// classifiers. Add or replace entries before building a session:
//
//	reg := numberid.DefaultRegistry(numberid.DefaultConfig())
//	reg.Register(numberid.NameSSHModuli, numberid.SSHModuli(cfg))
//
//	n, _ := numberid.Import("C0FFEE", numberid.FormatHex)
//	session, _ := numberid.NewSession(n, reg)
//	results, err := session.Dispatch(numberid.NameSSHModuli)
//
// # Custom Classifiers
//
// Any function can be registered through ClassifierFunc:
//
//	reg.Register("odd", numberid.ClassifierFunc(func(n *numberid.Number) (numberid.Report, error) {
//	    if n.Int().Bit(0) == 1 {
//	        return numberid.Report{Label: "odd", Value: "Yes"}, nil
//	    }
//	    return numberid.Report{Label: "odd", Value: numberid.Negative}, nil
//	}))
package numberid
