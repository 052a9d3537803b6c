package grain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kpfaulkner/grain-go/noise"
)

// Magic line of the film grain table text format understood by AV1 encoders.
const tableMagic = "filmgrn1"

var ErrBadTableMagic = errors.New("film grain table: bad magic")

// TableEntry is one grain parameter set together with the timestamp interval
// (10MHz ticks) it applies to.
type TableEntry struct {
	StartTime int64
	EndTime   int64
	Params    *FilmGrainParams
}

// Table is an ordered list of timed grain parameter sets.
type Table struct {
	Entries []TableEntry
}

func (t *Table) Append(startTime int64, endTime int64, params *FilmGrainParams) {
	t.Entries = append(t.Entries, TableEntry{StartTime: startTime, EndTime: endTime, Params: params})
}

// WriteTable emits the table in the film grain table text format.
func WriteTable(table *Table, output io.Writer) error {
	w := bufio.NewWriter(output)

	if _, err := fmt.Fprintf(w, "%s\n", tableMagic); err != nil {
		return err
	}
	for i := range table.Entries {
		if err := writeEntry(w, &table.Entries[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteTableFile writes the table to the named file, creating or truncating
// it.
func WriteTableFile(table *Table, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteTable(table, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeEntry(w *bufio.Writer, entry *TableEntry) error {
	p := entry.Params

	_, err := fmt.Fprintf(w, "E %d %d %d %d %d\n",
		entry.StartTime, entry.EndTime, boolToInt(p.ApplyGrain),
		p.RandomSeed, boolToInt(p.UpdateParameters))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\tp %d %d %d %d %d %d %d %d %d %d %d %d\n",
		p.ARCoeffLag, p.ARCoeffShift, p.GrainScaleShift, p.ScalingShift,
		boolToInt(p.ChromaScalingFromLuma), boolToInt(p.OverlapFlag),
		p.CbMult, p.CbLumaMult, p.CbOffset, p.CrMult, p.CrLumaMult, p.CrOffset)
	if err != nil {
		return err
	}

	if err = writeScalingPoints(w, "sY", p.ScalingPointsY); err != nil {
		return err
	}
	if err = writeScalingPoints(w, "sCb", p.ScalingPointsCb); err != nil {
		return err
	}
	if err = writeScalingPoints(w, "sCr", p.ScalingPointsCr); err != nil {
		return err
	}

	if err = writeCoeffs(w, "cY", p.ARCoeffsY, p.NumPosLuma()); err != nil {
		return err
	}
	if err = writeCoeffs(w, "cCb", p.ARCoeffsCb, p.NumPosChroma()); err != nil {
		return err
	}
	return writeCoeffs(w, "cCr", p.ARCoeffsCr, p.NumPosChroma())
}

func writeScalingPoints(w *bufio.Writer, tag string, points []noise.ScalingPoint) error {
	if _, err := fmt.Fprintf(w, "\t%s %d ", tag, len(points)); err != nil {
		return err
	}
	for _, pt := range points {
		if _, err := fmt.Fprintf(w, " %d %d", pt.X, pt.Noise); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

func writeCoeffs(w *bufio.Writer, tag string, coeffs []int32, count int) error {
	if count > len(coeffs) {
		return fmt.Errorf("film grain table: %s needs %d coefficients, have %d", tag, count, len(coeffs))
	}
	if _, err := fmt.Fprintf(w, "\t%s", tag); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintf(w, " %d", coeffs[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

// ReadTable parses a table previously written by WriteTable.
func ReadTable(input io.Reader) (*Table, error) {
	r := bufio.NewReader(input)

	magic, err := r.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("film grain table: %w", err)
	}
	if magic != tableMagic+"\n" {
		return nil, ErrBadTableMagic
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	p := &tableParser{scanner: scanner}

	table := &Table{}
	for {
		tag, ok := p.nextToken()
		if !ok {
			break
		}
		if tag != "E" {
			return nil, fmt.Errorf("film grain table: expected entry, got %q", tag)
		}
		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		table.Entries = append(table.Entries, entry)
	}
	if p.err != nil {
		return nil, p.err
	}
	return table, nil
}

// ReadTableFile parses the named table file.
func ReadTableFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

type tableParser struct {
	scanner *bufio.Scanner
	err     error
}

func (p *tableParser) nextToken() (string, bool) {
	if p.err != nil {
		return "", false
	}
	if !p.scanner.Scan() {
		p.err = p.scanner.Err()
		return "", false
	}
	return p.scanner.Text(), true
}

func (p *tableParser) expectTag(tag string) {
	tok, ok := p.nextToken()
	if !ok {
		if p.err == nil {
			p.err = fmt.Errorf("film grain table: unexpected end of input, wanted %q", tag)
		}
		return
	}
	if tok != tag {
		p.err = fmt.Errorf("film grain table: expected %q, got %q", tag, tok)
	}
}

func (p *tableParser) int64Val() int64 {
	tok, ok := p.nextToken()
	if !ok {
		if p.err == nil {
			p.err = errors.New("film grain table: unexpected end of input")
		}
		return 0
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("film grain table: bad integer %q", tok)
		return 0
	}
	return v
}

func (p *tableParser) int32Val() int32 {
	return int32(p.int64Val())
}

func (p *tableParser) boolVal() bool {
	return p.int64Val() != 0
}

func (p *tableParser) parseEntry() (TableEntry, error) {
	var entry TableEntry
	params := &FilmGrainParams{}
	entry.Params = params

	entry.StartTime = p.int64Val()
	entry.EndTime = p.int64Val()
	params.ApplyGrain = p.boolVal()
	params.RandomSeed = uint16(p.int64Val())
	params.UpdateParameters = p.boolVal()

	p.expectTag("p")
	params.ARCoeffLag = p.int32Val()
	params.ARCoeffShift = p.int32Val()
	params.GrainScaleShift = p.int32Val()
	params.ScalingShift = p.int32Val()
	params.ChromaScalingFromLuma = p.boolVal()
	params.OverlapFlag = p.boolVal()
	params.CbMult = p.int32Val()
	params.CbLumaMult = p.int32Val()
	params.CbOffset = p.int32Val()
	params.CrMult = p.int32Val()
	params.CrLumaMult = p.int32Val()
	params.CrOffset = p.int32Val()

	params.ScalingPointsY = p.parseScalingPoints("sY")
	params.ScalingPointsCb = p.parseScalingPoints("sCb")
	params.ScalingPointsCr = p.parseScalingPoints("sCr")

	params.ARCoeffsY = p.parseCoeffs("cY", params.NumPosLuma())
	params.ARCoeffsCb = p.parseCoeffs("cCb", params.NumPosChroma())
	params.ARCoeffsCr = p.parseCoeffs("cCr", params.NumPosChroma())

	if p.err != nil {
		return TableEntry{}, p.err
	}
	return entry, nil
}

func (p *tableParser) parseScalingPoints(tag string) []noise.ScalingPoint {
	p.expectTag(tag)
	n := p.int32Val()
	if p.err != nil || n <= 0 {
		return nil
	}
	points := make([]noise.ScalingPoint, 0, n)
	for i := int32(0); i < n; i++ {
		x := p.int32Val()
		y := p.int32Val()
		points = append(points, noise.ScalingPoint{X: x, Noise: y})
	}
	return points
}

func (p *tableParser) parseCoeffs(tag string, count int) []int32 {
	p.expectTag(tag)
	if count <= 0 {
		return nil
	}
	coeffs := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		coeffs = append(coeffs, p.int32Val())
	}
	return coeffs
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
