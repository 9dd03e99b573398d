package conditioner

import "strings"

// Decomposition low-pass filters for the orthogonal families we support.
// The remaining three filters of each bank are derived by quadratureMirror.
var waveletTable = map[string][]float64{
	"db1": {0.7071067811865476, 0.7071067811865476},
	"db2": {-0.12940952255126037, 0.2241438680420134, 0.8365163037378079, 0.48296291314453416},
	"db3": {0.03522629188570953, -0.08544127388202666, -0.13501102001025458, 0.45987750211849154,
		0.8068915093110925, 0.33267055295008263},
	"db4": {-0.010597401785069032, 0.0328830116668852, 0.030841381835560764, -0.18703481171909309,
		-0.027983769416859854, 0.6308807679298589, 0.7148465705529157, 0.2303778133088965},
	"db5": {0.0033357252854737712, -0.012580751999081999, -0.006241490212798274, 0.07757149384004572,
		-0.032244869584638375, -0.24229488706638203, 0.13842814590132074, 0.7243085284377729,
		0.6038292697971896, 0.16010239797419293},
	"db6": {-0.001077301085308479, 0.004777257510945511, 0.0005538422011614961, -0.031582039317486226,
		0.02752286553030573, 0.09750160558732304, -0.12976686756726194, -0.22626469396543983,
		0.3152503517091982, 0.7511339080210954, 0.4946238903984533, 0.11154074335010947},
	"sym4": {-0.07576571478927333, -0.02963552764599851, 0.49761866763201545, 0.8037387518059161,
		0.29785779560527736, -0.09921954357684722, -0.012603967262037833, 0.0322231006040427},
	"sym5": {0.027333068345077982, 0.029519490925774643, -0.039134249302383094, 0.1993975339773936,
		0.7234076904024206, 0.6339789634582119, 0.01660210576452232, -0.17532808990845047,
		-0.021101834024758855, 0.019538882735286728},
	"sym6": {0.015404109327027373, 0.0034907120842174702, -0.11799011114819057, -0.048311742585633,
		0.4910559419267466, 0.787641141030194, 0.3379294217276218, -0.07263752278646252,
		-0.021060292512300564, 0.04472490177066578, 0.0017677118642428036, -0.007800708325034148},
	"sym8": {-0.0033824159510061256, -0.0005421323317911481, 0.03169508781149298, 0.007607487324917605,
		-0.1432942383508097, -0.061273359067658524, 0.4813596512583722, 0.7771857517005235,
		0.3644418948353314, -0.05194583810770904, -0.027219029917056003, 0.049137179673607506,
		0.003808752013890615, -0.01495225833704823, -0.0003029205147213668, 0.0018899503327594609},
	"coif1": {-0.01565572813546454, -0.0727326195128539, 0.38486484686420286, 0.8525720202122554,
		0.3378976624578092, -0.0727326195128539},
}

var waveletAliases = map[string]string{
	"haar": "db1",
	"sym2": "db2",
	"sym3": "db3",
}

// filterBank holds the analysis and synthesis filters of one orthogonal wavelet.
type filterBank struct {
	name  string
	decLo []float64
	decHi []float64
	recLo []float64
	recHi []float64
}

func (f filterBank) length() int { return len(f.decLo) }

// KnownWavelet reports whether name resolves to a table entry.
func KnownWavelet(name string) bool {
	_, ok := resolveWavelet(name)
	return ok
}

// Wavelets lists the supported family names, aliases excluded.
func Wavelets() []string {
	out := make([]string, 0, len(waveletTable))
	for name := range waveletTable {
		out = append(out, name)
	}
	return out
}

func resolveWavelet(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := waveletAliases[key]; ok {
		key = alias
	}
	if _, ok := waveletTable[key]; ok {
		return key, true
	}
	return "", false
}

// lookupWavelet returns the bank for name, falling back to the default family.
func lookupWavelet(name string) (filterBank, bool) {
	key, ok := resolveWavelet(name)
	if !ok {
		key = "sym6"
	}
	return quadratureMirror(key, waveletTable[key]), ok
}

func quadratureMirror(name string, h []float64) filterBank {
	n := len(h)
	fb := filterBank{
		name:  name,
		decLo: make([]float64, n),
		decHi: make([]float64, n),
		recLo: make([]float64, n),
		recHi: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		fb.decLo[k] = h[k]
		hi := h[n-1-k]
		if k%2 == 1 {
			hi = -hi
		}
		fb.decHi[k] = hi
	}
	for k := 0; k < n; k++ {
		fb.recLo[k] = fb.decLo[n-1-k]
		fb.recHi[k] = fb.decHi[n-1-k]
	}
	return fb
}
