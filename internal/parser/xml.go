package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
)

// RootElement is the document element every log file must carry
const RootElement = "test_results"

// xmlLog mirrors the on-disk layout:
//
//	<test_results test_suite="smoke">
//	  <environment>ci</environment>
//	  <debug>build 42</debug>
//	  <tc_result id="1" result="PASS"><reason>...</reason></tc_result>
//	</test_results>
type xmlLog struct {
	XMLName     xml.Name  `xml:"test_results"`
	Suite       *string   `xml:"test_suite,attr"`
	Environment *string   `xml:"environment"`
	Debug       string    `xml:"debug"`
	Cases       []xmlCase `xml:"tc_result"`
}

type xmlCase struct {
	ID     string `xml:"id,attr"`
	Result string `xml:"result,attr"`
	Debug  string `xml:"debug"`
	Reason string `xml:"reason"`
}

// XMLParser parses XML test logs
type XMLParser struct{}

// NewXMLParser creates a new XMLParser
func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

// ParseFile reads and parses the log file at path
func (p *XMLParser) ParseFile(path string) (domain.LogRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.LogRecord{}, tlrerrors.Read(path, "open log file", err)
	}
	defer f.Close()

	return p.Parse(path, f)
}

// Parse decodes a log document from r. path is only used for the record and errors.
func (p *XMLParser) Parse(path string, r io.Reader) (domain.LogRecord, error) {
	var doc xmlLog
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader
	if err := decoder.Decode(&doc); err != nil {
		return domain.LogRecord{}, tlrerrors.Read(path, "parse log file", err)
	}

	if doc.Suite == nil {
		return domain.LogRecord{}, tlrerrors.Read(path, "missing test_suite attribute on <"+RootElement+">", nil)
	}
	if doc.Environment == nil {
		return domain.LogRecord{}, tlrerrors.Read(path, "missing <environment> element", nil)
	}

	record := domain.LogRecord{
		Path:        path,
		Suite:       strings.TrimSpace(*doc.Suite),
		Environment: strings.TrimSpace(*doc.Environment),
		Debug:       strings.TrimSpace(doc.Debug),
		Cases:       make([]domain.TestCaseResult, 0, len(doc.Cases)),
	}

	for _, c := range doc.Cases {
		record.Cases = append(record.Cases, domain.TestCaseResult{
			ID:     c.ID,
			Status: c.Result,
			Debug:  strings.TrimSpace(c.Debug),
			Reason: strings.TrimSpace(c.Reason),
		})
	}

	return record, nil
}

// charsetReader converts documents that declare a non UTF-8 encoding,
// such as ISO-8859-1, to UTF-8
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
