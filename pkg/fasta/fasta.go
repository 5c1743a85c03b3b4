// Package fasta reads and writes FASTA records on top of biogo.
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var ErrEmptySpeciesList = errors.New("species list is empty")

// Record is one FASTA entry. Header is the full header line without '>'.
type Record struct {
	Header string
	Seq    string
}

// Species is the part of the header before the first '_'.
func (r Record) Species() string {
	return SpeciesOf(r.Header)
}

func SpeciesOf(header string) string {
	species, _, _ := strings.Cut(header, "_")
	return species
}

// Read parses every record from r. Headers are kept exactly as written,
// minus surrounding whitespace.
func Read(r io.Reader) ([]Record, error) {
	var raw bytes.Buffer
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(biofasta.NewReader(io.TeeReader(r, &raw), template))

	var records []Record
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		header := s.Name()
		if desc := s.Description(); desc != "" {
			header += " " + desc
		}
		records = append(records, Record{
			Header: header,
			Seq:    lettersString(s.Seq),
		})
	}
	if err := sc.Error(); err != nil {
		return records, err
	}

	// biogo splits the header at the first blank and loses the separator.
	if headers := rawHeaders(raw.Bytes()); len(headers) == len(records) {
		for i := range records {
			records[i].Header = headers[i]
		}
	}
	return records, nil
}

func rawHeaders(b []byte) []string {
	var headers []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			headers = append(headers, line[1:])
		}
	}
	return headers
}

// ReadFile parses every record of the FASTA file at path.
func ReadFile(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	records, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// Writer wraps the biogo writer. lineLength <= 0 writes each sequence on one line.
type Writer struct {
	bw *bufio.Writer
	fw *biofasta.Writer
}

func NewWriter(w io.Writer, lineLength int) *Writer {
	if lineLength <= 0 {
		lineLength = math.MaxInt32
	}
	bw := bufio.NewWriter(w)
	return &Writer{bw: bw, fw: biofasta.NewWriter(bw, lineLength)}
}

func (w *Writer) Write(rec Record) error {
	name, desc, _ := strings.Cut(rec.Header, " ")
	s := linear.NewSeq(name, toLetters(rec.Seq), alphabet.Protein)
	s.Desc = desc
	if _, err := w.fw.Write(s); err != nil {
		return fmt.Errorf("failed to write %q: %w", rec.Header, err)
	}
	return nil
}

func lettersString(l alphabet.Letters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return string(b)
}

func toLetters(seq string) alphabet.Letters {
	l := make(alphabet.Letters, len(seq))
	for i := 0; i < len(seq); i++ {
		l[i] = alphabet.Letter(seq[i])
	}
	return l
}

// Flush writes buffered output. Every record already ends with a newline.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records []Record, lineLength int) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}

	w := NewWriter(fh, lineLength)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			fh.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// ReadSpeciesList reads one species identifier per non-empty line, dropping a
// leading '>' if present. Order is kept.
func ReadSpeciesList(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var species []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimPrefix(line, ">")
		if line != "" {
			species = append(species, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read species list %s: %w", path, err)
	}
	if len(species) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySpeciesList, path)
	}
	return species, nil
}
