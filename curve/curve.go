// Package curve is the named-curve catalogue (spec component C) and the
// name-to-implementation dispatcher (component G). It materializes its
// parameter table once, lazily, behind a sync.Once — the same pattern
// the teacher's koblitz.initS256/initonce use for a single curve,
// generalized to all eleven names spec.md §4.3 recognizes.
package curve

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sammyne/ecc-core/eccerr"
)

// Name identifies a curve in the catalogue. Only the eleven spec.md
// §4.3 names are valid.
type Name string

const (
	P192      Name = "P192"
	P224      Name = "P224"
	P256      Name = "P256"
	P384      Name = "P384"
	P521      Name = "P521"
	Secp256k1 Name = "secp256k1"
	K163      Name = "K163"
	K233      Name = "K233"
	K283      Name = "K283"
	K409      Name = "K409"
	K571      Name = "K571"
)

// Kind distinguishes the two field families a curve dispatches to.
type Kind int

const (
	// KindPrime selects the affine, F_p code path (component D).
	KindPrime Kind = iota
	// KindBinary selects the López-Dahab, F_2^m code path (component E).
	KindBinary
)

// PrimeParams is the tuple (p, a, b, n, G) for a short-Weierstrass
// curve over F_p (spec.md §3).
type PrimeParams struct {
	Name   Name
	P      *big.Int
	A      *big.Int
	B      *big.Int
	N      *big.Int
	Gx, Gy *big.Int
}

// BinaryParams is the tuple (m, f(t), a, b, n, G) for a Koblitz curve
// over F_2^m (spec.md §3). A and B are 0 or 1, matching Koblitz curves.
type BinaryParams struct {
	Name   Name
	M      int
	A      int
	B      int
	N      *big.Int
	Gx, Gy *big.Int
}

// Variant is the tagged union Resolve returns: exactly one of Prime or
// Binary is populated, selected by Kind.
type Variant struct {
	Kind   Kind
	Prime  *PrimeParams
	Binary *BinaryParams
}

var (
	initOnce sync.Once
	catalog  map[Name]Variant
	log      = zerolog.Nop()
)

// SetLogger installs a sink for the one-time catalogue-bootstrap debug
// event. The default is a no-op logger, so the core stays silent unless
// a host explicitly wires one in (see SPEC_FULL.md §3.2).
func SetLogger(l zerolog.Logger) {
	log = l
}

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant in source: " + s)
	}
	return v
}

func buildCatalog() {
	catalog = make(map[Name]Variant, 11)

	addPrimeFromStdlib(P192, elliptic.CurveParams{
		// crypto/elliptic does not carry P-192; constants per SEC 2 §2.2.2
		// (prime192v1 / secp192r1).
		P:  fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF"),
		N:  fromHex("FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831"),
		B:  fromHex("64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1"),
		Gx: fromHex("188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012"),
		Gy: fromHex("07192B95FFC8DA78631011ED6B24CDD573F977A11E794811"),
	})
	addPrimeFromStdlibCurve(P224, elliptic.P224())
	addPrimeFromStdlibCurve(P256, elliptic.P256())
	addPrimeFromStdlibCurve(P384, elliptic.P384())
	addPrimeFromStdlibCurve(P521, elliptic.P521())

	// SEC 2 §2.4.1 — identical constants to the teacher's initS256.
	addPrime(Secp256k1, &PrimeParams{
		Name: Secp256k1,
		P:    fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		A:    big.NewInt(0),
		B:    big.NewInt(7),
		N:    fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		Gx:   fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:   fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	})

	// SEC 2 §3 — recommended Koblitz binary curves.
	addBinary(K163, &BinaryParams{
		Name: K163, M: 163, A: 1, B: 1,
		N:  fromHex("04000000000000000000020108A2E0CC0D99F8A5EF"),
		Gx: fromHex("02FE13C0537BBC11ACAA07D793DE4E6D5E5C94EEE8"),
		Gy: fromHex("0289070FB05D38FF58321F2E800536D538CCDAA3D9"),
	})
	addBinary(K233, &BinaryParams{
		Name: K233, M: 233, A: 0, B: 1,
		N:  fromHex("8000000000000000000000000000069D5BB915BCD46EFB1AD5F173ABDF"),
		Gx: fromHex("017232BA853A7E731AF129F22FF4149563A419C26BF50A4C9D6EEFAD6126"),
		Gy: fromHex("01DB537DECE819B7F70F555A67C427A8CD9BF18AEB9B56E0C11056FAE6A3"),
	})
	addBinary(K283, &BinaryParams{
		Name: K283, M: 283, A: 0, B: 1,
		N:  fromHex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE9AE2ED07577265DFF7F94451E061E163C61"),
		Gx: fromHex("0503213F78CA44883F1A3B8162F188E553CD265F23C1567A16876913B0C2AC2458492836"),
		Gy: fromHex("01CCDA380F1C9E318D90F95D07E5426FE87E45C0E8184698E45962364E34116177DD2259"),
	})
	addBinary(K409, &BinaryParams{
		Name: K409, M: 409, A: 0, B: 1,
		N:  fromHex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE5F83B2D4EA20400EC4557D5ED3E3E7CA5B4B5C83B8E01E5FCF"),
		Gx: fromHex("0060F05F658F49C1AD3AB1890F7184210EFD0987E307C84C27ACCFB8F9F67CC2C460189EB5AAAA62EE222EB1B35540CFE9023746"),
		Gy: fromHex("01E369050B7C4E42ACBA1DACBF04299C3460782F918EA427E6325165E9EA10E3DA5F6C42E9C55215AA9CA27A5863EC48D8E0286B"),
	})
	addBinary(K571, &BinaryParams{
		Name: K571, M: 571, A: 0, B: 1,
		N:  fromHex("020000000000000000000000000000000000000000000000000000000000000000000000131850E1F19A63E4B391A8DB917F4138B630D84BE5D639381E91DEB45CFE778F637C1001"),
		Gx: fromHex("026EB7A859923FBC82189631F8103FE4AC9CA2970012D5D46024804801841CA44370958493B205E647DA304DB4CEB08CBBD1BA39494776FB988B47174DCA88C7E2945283A01C8972"),
		Gy: fromHex("0349DC807F4FBF374F4AEADE3BCA95314DD58CEC9F307A54FFC61EFC006D8A2C9D4979C0AC44AEA74FBEBBB9F772AEDCB620B01A7BA7AF1B320430C8591984F601CD4C143EF1C7A3"),
	})
}

func addPrime(name Name, p *PrimeParams) {
	catalog[name] = Variant{Kind: KindPrime, Prime: p}
	log.Debug().Str("curve", string(name)).Str("field", "prime").Msg("curve parameters materialized")
}

func addBinary(name Name, b *BinaryParams) {
	catalog[name] = Variant{Kind: KindBinary, Binary: b}
	log.Debug().Str("curve", string(name)).Str("field", "binary").Int("degree", b.M).Msg("curve parameters materialized")
}

// addPrimeFromStdlibCurve borrows crypto/elliptic's published NIST
// constants rather than re-transcribing them — the kernel's own point
// and field arithmetic never calls into crypto/elliptic, only its
// Params() accessor for p, n, b, Gx, Gy.
func addPrimeFromStdlibCurve(name Name, c elliptic.Curve) {
	addPrimeFromStdlib(name, *c.Params())
}

func addPrimeFromStdlib(name Name, p elliptic.CurveParams) {
	a := new(big.Int).Sub(p.P, big.NewInt(3)) // every NIST curve but secp256k1 has a = p-3
	addPrime(name, &PrimeParams{
		Name: name, P: p.P, A: a, B: p.B, N: p.N, Gx: p.Gx, Gy: p.Gy,
	})
}

// Resolve maps a curve name to its parameter variant, building the
// catalogue on first use.
func Resolve(name Name) (Variant, error) {
	initOnce.Do(buildCatalog)

	v, ok := catalog[name]
	if !ok {
		return Variant{}, eccerr.Wrap(eccerr.KindUnknownCurve, "unknown curve %q", name)
	}
	return v, nil
}
