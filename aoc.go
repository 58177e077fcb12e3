// Package aoc runs Advent of Code solvers. Parts are methods named
// D{day}p{part} on a solver struct embedding *Puzzle; their samples live
// in the method doc comments as "want=ANSWER" followed by the input.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the samples found in the doc comments of src,
// keyed by function name. A sample without input reuses the input of the
// previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers and gives each part access to its input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	inputs  map[int][]byte
}

// InputPath returns the file the current day's input is read from.
func (p *Puzzle) InputPath() string {
	if flagInput != "" {
		return flagInput
	}
	return filepath.Join("inputs", fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

// Input returns the raw input for the running part: the sample in
// sample mode, otherwise the contents of InputPath.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	if b, ok := p.inputs[p.day.day]; ok {
		return b, nil
	}
	path := p.InputPath()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if p.inputs == nil {
		p.inputs = make(map[int][]byte)
	}
	p.inputs[p.day.day] = b
	return b, nil
}

// Lines returns the input split into lines. A trailing newline does not
// produce an empty final line.
func (p *Puzzle) Lines() ([]string, error) {
	b, err := p.Input()
	if err != nil {
		return nil, err
	}
	return Lines(b), nil
}

func (p *Puzzle) Debugf(format string, args ...any) {
	log.Debug().Str("part", p.solver.Name).Bool("sample", p.SampleMode).Msgf(format, args...)
}

func (p *Puzzle) Sample() (sample, error) {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		return sample{}, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return s, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}. The
// methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s: got %s; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "input file; defaults to inputs/{year}/{day}.input")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
})

// sampleMismatchError reports a sample answer that differs from its want=
// line.
type sampleMismatchError struct {
	part      string
	got, want string
}

func (e *sampleMismatchError) Error() string {
	return fmt.Sprintf("part %s sample: got %v; want %v", e.part, e.got, e.want)
}

// runPart runs one part in the given mode and returns its answer. A part
// that returns an error value fails.
func (p *Puzzle) runPart(ps partSolver, sampleMode bool) (string, error) {
	p.solver = ps
	p.SampleMode = sampleMode
	if !sampleMode {
		// Prime the input so the read is not timed.
		if _, err := p.Input(); err != nil {
			return "", err
		}
	}
	t0 := time.Now()
	got := ps.fn()
	if err, ok := got.(error); ok {
		return "", fmt.Errorf("part %s: %w", ps.Part, err)
	}
	ans := fmt.Sprint(got)
	took := time.Since(t0).Round(time.Microsecond)
	if sampleMode {
		s, err := p.Sample()
		if err != nil {
			return "", err
		}
		if ans != s.want {
			return "", &sampleMismatchError{part: ps.Part, got: ans, want: s.want}
		}
		log.Info().Str("part", ps.Part).Str("answer", ans).Dur("took", took).Msg("sample ✅")
		return ans, nil
	}
	log.Info().Str("part", ps.Part).Str("answer", ans).Dur("took", took).Msg("solved")
	return ans, nil
}

func runDay(slvr any, year int, d day, samples map[string]sample) error {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	log.Info().Int("day", d.day).Msg("running")
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample || sm && flagSkipSample {
				continue
			}
			if sm {
				if _, ok := samples[ps.Name]; !ok {
					log.Debug().Str("part", ps.Part).Msg("no sample")
					continue
				}
			}
			ans, err := p.runPart(ps, sm)
			if err != nil {
				return err
			}
			if !sm {
				fmt.Println(ans)
			}
		}
	}
	return nil
}

// Run runs the registered parts of slvr, a pointer to a struct embedding
// *Puzzle. src is the solver's source, from which samples are extracted.
// Any failure is logged and exits the process with status 1.
func Run(year int, src []byte, slvr any) {
	initFlags()
	if err := run(year, src, slvr); err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

// VerifySamples runs every part of slvr that has a sample against it,
// without touching the real input. It is meant for tests.
func VerifySamples(src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	for _, d := range days {
		p := &Puzzle{day: d, samples: samples}
		reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
		for _, ps := range d.parts {
			if _, ok := samples[ps.Name]; !ok {
				continue
			}
			if _, err := p.runPart(ps, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func run(year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			return fmt.Errorf("no day %d", flagCurDay)
		}
		return runDay(slvr, year, d, samples)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, dn := range dayNums {
		if err := runDay(slvr, year, days[dn], samples); err != nil {
			return err
		}
	}
	return nil
}
