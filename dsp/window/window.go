package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Kind identifies a window function.
type Kind int

const (
	Rectangular Kind = iota
	Hann
	SqrtHann
	Hamming
	Triangular
	SqrtTriangular
	Blackman
	Blackman2
	Nuttall01
	Nuttall02
	Nuttall03
	Nuttall11
	Nuttall12
	Nuttall20
	Nuttall21
	Nuttall30
	Itersine
)

// Collapsed aliases. Hann doubles as the Nuttall window of continuity
// order 10; the sine window is the square root of Hann; the Vorbis/Ogg
// window is the iterated sine.
const (
	Hanning   = Hann
	Nuttall10 = Hann
	Cosine    = SqrtHann
	Sine      = SqrtHann
	Square    = Rectangular
	Rect      = Rectangular
	Bartlett  = Triangular
	Nuttall   = Nuttall12
	Ogg       = Itersine
	Vorbis    = Itersine
)

// Norm selects the normalization applied after generation.
type Norm int

const (
	// NormNone leaves the window with its natural peak of 1 at index 0.
	NormNone Norm = iota
	// NormPeak rescales so the largest magnitude is 1.
	NormPeak
	// NormArea rescales so the samples sum to 1.
	NormArea
	// NormEnergy rescales to unit Euclidean norm.
	NormEnergy
)

// Option configures window generation.
type Option func(*config)

type config struct {
	norm Norm
}

// WithNorm selects the post-generation normalization.
func WithNorm(n Norm) Option {
	return func(c *config) {
		c.norm = n
	}
}

// Cosine-sum coefficient tables, evaluated as sum c_j*cos(2*pi*j*x) on
// x in [-1/2, 1/2). Each table sums to 1 so the peak at x = 0 is 1.
var cosineCoeffs = map[Kind][]float64{
	Hann:      {0.5, 0.5},
	Hamming:   {0.54, 0.46},
	Blackman:  {0.42, 0.5, 0.08},
	Blackman2: {7938.0 / 18608.0, 9240.0 / 18608.0, 1430.0 / 18608.0},
	Nuttall01: {0.53836, 0.46164},
	Nuttall02: {0.4243801, 0.4973406, 0.0782793},
	Nuttall03: {0.3635819, 0.4891775, 0.1365995, 0.0106411},
	Nuttall11: {0.40897, 0.5, 0.09103},
	Nuttall12: {0.355768, 0.487396, 0.144232, 0.012604},
	Nuttall20: {3.0 / 8.0, 4.0 / 8.0, 1.0 / 8.0},
	Nuttall21: {0.338946, 0.481973, 0.161054, 0.018027},
	Nuttall30: {10.0 / 32.0, 15.0 / 32.0, 6.0 / 32.0, 1.0 / 32.0},
}

var kindNames = map[Kind]string{
	Rectangular:    "rect",
	Hann:           "hann",
	SqrtHann:       "sqrthann",
	Hamming:        "hamming",
	Triangular:     "tria",
	SqrtTriangular: "sqrttria",
	Blackman:       "blackman",
	Blackman2:      "blackman2",
	Nuttall01:      "nuttall01",
	Nuttall02:      "nuttall02",
	Nuttall03:      "nuttall03",
	Nuttall11:      "nuttall11",
	Nuttall12:      "nuttall12",
	Nuttall20:      "nuttall20",
	Nuttall21:      "nuttall21",
	Nuttall30:      "nuttall30",
	Itersine:       "itersine",
}

var kindsByName = map[string]Kind{
	"rect":           Rectangular,
	"square":         Rectangular,
	"rectangular":    Rectangular,
	"hann":           Hann,
	"hanning":        Hann,
	"nuttall10":      Hann,
	"sqrthann":       SqrtHann,
	"cosine":         SqrtHann,
	"sine":           SqrtHann,
	"hamming":        Hamming,
	"tria":           Triangular,
	"triangular":     Triangular,
	"bartlett":       Triangular,
	"sqrttria":       SqrtTriangular,
	"sqrttriangular": SqrtTriangular,
	"blackman":       Blackman,
	"blackman2":      Blackman2,
	"nuttall":        Nuttall12,
	"nuttall01":      Nuttall01,
	"nuttall02":      Nuttall02,
	"nuttall03":      Nuttall03,
	"nuttall11":      Nuttall11,
	"nuttall12":      Nuttall12,
	"nuttall20":      Nuttall20,
	"nuttall21":      Nuttall21,
	"nuttall30":      Nuttall30,
	"itersine":       Itersine,
	"ogg":            Itersine,
	"vorbis":         Itersine,
}

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// ParseKind resolves a window name or alias, case-insensitively.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, unknownKind(name)
	}

	return k, nil
}

// Kinds returns the canonical kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		Rectangular, Hann, SqrtHann, Hamming, Triangular, SqrtTriangular,
		Blackman, Blackman2,
		Nuttall01, Nuttall02, Nuttall03, Nuttall11, Nuttall12,
		Nuttall20, Nuttall21, Nuttall30,
		Itersine,
	}
}

// Generate returns gl samples of the window in zero-centered periodic
// form. It returns nil for gl <= 0.
func Generate(k Kind, gl int, opts ...Option) []float64 {
	if gl <= 0 {
		return nil
	}

	out := make([]float64, gl)
	if err := Fill(k, out, opts...); err != nil {
		return nil
	}

	return out
}

// Fill writes the window into buf, one sample per element.
func Fill(k Kind, buf []float64, opts ...Option) error {
	if len(buf) == 0 {
		return errEmptyBuffer
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	gl := len(buf)
	for n := range buf {
		buf[n] = evalAt(k, samplePosition(n, gl))
	}

	return normalize(buf, cfg.norm)
}

// Apply multiplies buf in place by the selected window.
func Apply(k Kind, buf []float64, opts ...Option) error {
	if len(buf) == 0 {
		return errEmptyBuffer
	}

	coeffs := Generate(k, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW of the coefficients in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyBuffer
	}

	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroSum
	}

	sumSq := vecmath.DotProduct(coeffs, coeffs)

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// samplePosition maps index n to x in [-1/2, 1/2): the first ceil(gl/2)
// samples cover [0, 1/2) and the rest wrap to [-1/2, 0).
func samplePosition(n, gl int) float64 {
	if n < (gl+1)/2 {
		return float64(n) / float64(gl)
	}

	return float64(n-gl) / float64(gl)
}

func evalAt(k Kind, x float64) float64 {
	switch k {
	case Rectangular:
		return 1
	case SqrtHann:
		return math.Sqrt(math.Max(0, cosSum(x, cosineCoeffs[Hann])))
	case Triangular:
		return 1 - 2*math.Abs(x)
	case SqrtTriangular:
		return math.Sqrt(math.Max(0, 1-2*math.Abs(x)))
	case Itersine:
		c := math.Cos(math.Pi * x)
		return math.Sin(math.Pi / 2 * c * c)
	default:
		if coeffs, ok := cosineCoeffs[k]; ok {
			return cosSum(x, coeffs)
		}

		return 1
	}
}

func cosSum(x float64, coeffs []float64) float64 {
	sum := 0.0
	for j, c := range coeffs {
		sum += c * math.Cos(2*math.Pi*float64(j)*x)
	}

	return sum
}

func normalize(buf []float64, norm Norm) error {
	switch norm {
	case NormNone:
		return nil
	case NormPeak:
		peak := vecmath.MaxAbs(buf)
		if peak == 0 {
			return errZeroSum
		}

		vecmath.ScaleBlockInPlace(buf, 1/peak)
	case NormArea:
		sum := vecmath.Sum(buf)
		if sum == 0 {
			return errZeroSum
		}

		vecmath.ScaleBlockInPlace(buf, 1/sum)
	case NormEnergy:
		energy := vecmath.DotProduct(buf, buf)
		if energy == 0 {
			return errZeroSum
		}

		vecmath.ScaleBlockInPlace(buf, 1/math.Sqrt(energy))
	default:
		return errUnknownNorm
	}

	return nil
}
