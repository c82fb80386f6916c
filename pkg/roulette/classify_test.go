package roulette

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEveryTemplate(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.Name, func(t *testing.T) {
			body, err := shape.New().Body()
			require.NoError(t, err)

			name, err := Classify(body)
			require.NoError(t, err)
			assert.Equal(t, shape.Name, name)
		})
	}
}

func TestClassifyBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"success with null message", `{"status":"success","data":{"id":7,"name":"Sample Data","timestamp":"2023-12-25T25:61:61Z","extra_field":[]},"message":null}`, ShapeSuccess},
		{"success with empty message", `{"status":"success","data":{"id":1000,"name":"Sample Data","timestamp":"x","extra_field":{}},"message":""}`, ShapeSuccess},
		{"rate limit", `{"message":"Too many requests","retry_after":null}`, ShapeRateLimitWithoutHeaders},
		{"null collection with whitespace", "\n  {\"items\": null, \"total\": 0}\n", ShapeNullInsteadOfEmptyArray},
		{"plain text with trailing newline", "Server Error: Please try again later\n", ShapePlainText},
		{"pretty printed xml", "<error>\n  <code>500</code>\n  <message>Surprise!</message>\n</error>\n", ShapeXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := Classify([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"other text", "Bad Gateway"},
		{"json array", `[1, 2, 3]`},
		{"extra key", `{"items": null, "total": 0, "page": 1}`},
		{"items not null", `{"items": [], "total": 0}`},
		{"success id out of range", `{"status":"success","data":{"id":0,"name":"a","timestamp":"b","extra_field":0},"message":""}`},
		{"other xml root", `<fault><code>500</code><message>x</message></fault>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify([]byte(tt.body))
			assert.ErrorIs(t, err, ErrUnknownShape)
		})
	}
}

func TestXMLTemplateIsWellFormed(t *testing.T) {
	shape, ok := LookupShape(ShapeXML)
	require.True(t, ok)
	raw := shape.New().(Raw)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(raw.Text))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "error", root.Tag)
	assert.Equal(t, "500", root.SelectElement("code").Text())
	assert.Equal(t, "Surprise!", root.SelectElement("message").Text())
}

func TestSchemasCompile(t *testing.T) {
	compiled, err := compileSchemas()
	require.NoError(t, err)
	// success plus the eight structured templates
	assert.Len(t, compiled, 9)
}
