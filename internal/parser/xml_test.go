package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
)

func TestXMLParser_Parse(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<test_results test_suite="smoke">
    <environment>ci</environment>
    <debug>build 42</debug>
    <tc_result id="1" result="PASS"/>
    <tc_result id="2" result="FAIL">
        <debug>core dumped</debug>
        <reason>
            timeout after 30s
        </reason>
    </tc_result>
    <tc_result id="3" result="SKIP"></tc_result>
    <tc_result id="4" result="ERROR"/>
</test_results>
`
	record, err := NewXMLParser().Parse("smoke.xml", strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "smoke.xml", record.Path)
	assert.Equal(t, "smoke", record.Suite)
	assert.Equal(t, "ci", record.Environment)
	assert.Equal(t, "build 42", record.Debug)
	assert.Equal(t, []domain.TestCaseResult{
		{ID: "1", Status: "PASS"},
		{ID: "2", Status: "FAIL", Debug: "core dumped", Reason: "timeout after 30s"},
		{ID: "3", Status: "SKIP"},
		{ID: "4", Status: "ERROR"},
	}, record.Cases)
}

func TestXMLParser_Parse_SingleCaseAndNoDebug(t *testing.T) {
	doc := `<test_results test_suite="unit"><environment>local</environment><tc_result id="a" result="PASS"/></test_results>`

	record, err := NewXMLParser().Parse("unit.xml", strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, record.Debug)
	require.Len(t, record.Cases, 1)
	assert.Equal(t, domain.OutcomePass, record.Cases[0].Outcome())
}

func TestXMLParser_Parse_NoCases(t *testing.T) {
	doc := `<test_results test_suite="empty"><environment>ci</environment></test_results>`

	record, err := NewXMLParser().Parse("empty.xml", strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, record.Cases)
}

func TestXMLParser_Parse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"not xml", "PASS,FAIL,SKIP"},
		{"truncated", `<test_results test_suite="x"><environment>ci</environment>`},
		{"wrong root element", `<testsuite name="x"><environment>ci</environment></testsuite>`},
		{"missing suite attribute", `<test_results><environment>ci</environment></test_results>`},
		{"missing environment", `<test_results test_suite="x"></test_results>`},
		{"unknown charset", `<?xml version="1.0" encoding="x-no-such-charset"?><test_results test_suite="x"><environment>ci</environment></test_results>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewXMLParser().Parse("bad.xml", strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, tlrerrors.IsKind(err, tlrerrors.KindRead))
			assert.Contains(t, err.Error(), "bad.xml")
		})
	}
}

func TestXMLParser_Parse_Latin1(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<test_results test_suite=\"r\xe9gression\">" +
		"<environment>ci</environment>" +
		"<tc_result id=\"1\" result=\"FAIL\"><reason>caf\xe9 not served</reason></tc_result>" +
		"</test_results>"

	record, err := NewXMLParser().Parse("latin1.xml", strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "régression", record.Suite)
	require.Len(t, record.Cases, 1)
	assert.Equal(t, "café not served", record.Cases[0].Reason)
}

func TestXMLParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nightly.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<test_results test_suite="nightly"><environment>staging</environment><tc_result id="1" result="PASS"/></test_results>`), 0644))

	record, err := NewXMLParser().ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nightly", record.Suite)
	assert.Equal(t, path, record.Path)

	t.Run("returns read error for non-existent file", func(t *testing.T) {
		_, err := NewXMLParser().ParseFile(filepath.Join(dir, "missing.xml"))
		require.Error(t, err)
		assert.True(t, tlrerrors.IsKind(err, tlrerrors.KindRead))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
