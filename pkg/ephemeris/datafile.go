package ephemeris

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
)

// chebSeries holds Chebyshev coefficients for one body over one time segment.
type chebSeries struct {
	Lon  []float64 `json:"lon"`
	Lat  []float64 `json:"lat"`
	Dist []float64 `json:"dist"`
}

// bodyFile is the on-disk format of one body's coefficient file.
type bodyFile struct {
	Body        string       `json:"body"`
	Start       float64      `json:"start"`        // first covered Julian Day
	End         float64      `json:"end"`          // last covered Julian Day
	SegmentDays float64      `json:"segment_days"` // days per segment
	Series      []chebSeries `json:"series"`
}

// DataFileProvider reads per-body Chebyshev coefficient files from a
// directory for higher-precision positions. Bodies without a coefficient
// file, and the ayanamsa models, are served by the built-in analytic
// provider.
type DataFileProvider struct {
	dir     string
	files   map[Body]*bodyFile
	builtin *BuiltinProvider
}

// NewDataFileProvider loads all coefficient files from dir. The directory
// must exist; callers that want the absent-directory degraded mode should go
// through Open. A present but unreadable or corrupt file is an error, since
// silently skipping it would hide a misconfiguration.
func NewDataFileProvider(dir string) (*DataFileProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("ephemeris data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ephemeris data path %s is not a directory", dir)
	}

	p := &DataFileProvider{
		dir:     dir,
		files:   make(map[Body]*bodyFile),
		builtin: NewBuiltinProvider(),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ephemeris data directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var bf bodyFile
		if err := json.Unmarshal(data, &bf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		body, ok := ParseBody(bf.Body)
		if !ok {
			return nil, fmt.Errorf("%s names unknown body %q", path, bf.Body)
		}
		if bf.SegmentDays <= 0 || bf.End <= bf.Start || len(bf.Series) == 0 {
			return nil, fmt.Errorf("%s has an invalid time coverage header", path)
		}
		p.files[body] = &bf
	}

	return p, nil
}

// Name returns the provider name.
func (p *DataFileProvider) Name() string { return "datafile" }

// Close releases the loaded coefficient tables.
func (p *DataFileProvider) Close() error {
	p.files = nil
	return nil
}

// Ayanamsa evaluates the sidereal model; the coefficient files carry
// positions only.
func (p *DataFileProvider) Ayanamsa(system AyanamsaSystem, jd astrotime.JulianDay) (float64, error) {
	return ayanamsaValue(system, jd)
}

// Coverage reports how many bodies have coefficient files loaded.
func (p *DataFileProvider) Coverage() int { return len(p.files) }

// Calc computes the tropical position of body at jd from its coefficient
// file, falling through to the analytic model for uncovered bodies.
func (p *DataFileProvider) Calc(body Body, jd astrotime.JulianDay) (RawPosition, error) {
	bf, ok := p.files[body]
	if !ok {
		return p.builtin.Calc(body, jd)
	}

	if float64(jd) < bf.Start || float64(jd) > bf.End {
		return RawPosition{}, fmt.Errorf("jd %.6f outside data file coverage [%.1f, %.1f] for %s",
			float64(jd), bf.Start, bf.End, body)
	}

	seg := int((float64(jd) - bf.Start) / bf.SegmentDays)
	if seg >= len(bf.Series) {
		seg = len(bf.Series) - 1
	}
	s := bf.Series[seg]

	// Normalize jd into [-1, 1] within the segment.
	segStart := bf.Start + float64(seg)*bf.SegmentDays
	x := 2*(float64(jd)-segStart)/bf.SegmentDays - 1

	lon := chebEval(s.Lon, x)
	lat := chebEval(s.Lat, x)
	dist := chebEval(s.Dist, x)

	// dλ/dt = dλ/dx · dx/dt, with dx/dt = 2/segmentDays.
	speed := chebDeriv(s.Lon, x) * 2 / bf.SegmentDays

	return RawPosition{
		Body:      body,
		Longitude: astrotime.Normalize360(lon),
		Latitude:  lat,
		Distance:  dist,
		Speed:     speed,
	}, nil
}

// chebEval evaluates a Chebyshev series at x ∈ [-1, 1] using the Clenshaw
// recurrence.
func chebEval(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	var b1, b2 float64
	for i := len(coeffs) - 1; i >= 1; i-- {
		b1, b2 = 2*x*b1-b2+coeffs[i], b1
	}
	return x*b1 - b2 + coeffs[0]
}

// chebDeriv evaluates the derivative of a Chebyshev series at x ∈ [-1, 1].
func chebDeriv(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n < 2 {
		return 0
	}
	// Derivative coefficients via the standard downward recurrence.
	d := make([]float64, n+1)
	for i := n - 2; i >= 1; i-- {
		d[i] = d[i+2] + 2*float64(i+1)*coeffs[i+1]
	}
	d[0] = d[2]/2 + coeffs[1]
	return chebEval(d[:n-1], x)
}

// Ensure DataFileProvider implements Provider.
var _ Provider = (*DataFileProvider)(nil)
