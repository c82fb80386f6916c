package roulette

import (
	"bytes"

	"github.com/beevik/etree"
)

// Shape names. ShapeSuccess is the randomized success payload; the rest
// name the fixed malformed templates.
const (
	ShapeSuccess                 = "success"
	ShapeSuccessWithErrorField   = "success_but_with_error_field"
	ShapeErrorWith200Status      = "error_but_with_200_status"
	ShapeNestedError             = "nested_error_ception"
	ShapePlainText               = "plain_text_in_json_endpoint"
	ShapeXML                     = "xml_response_on_json_api"
	ShapeRateLimitWithoutHeaders = "rate_limit_without_headers"
	ShapeDeprecatedFields        = "deprecated_field_without_warning"
	ShapeLeakedCORSHeader        = "cors_headers_on_internal_api"
	ShapeInconsistentTimestamps  = "timestamp_in_13_different_formats"
	ShapeNullInsteadOfEmptyArray = "null_instead_of_empty_array"
)

const (
	plainTextBody      = "Server Error: Please try again later"
	malformedTimestamp = "2023-12-25T25:61:61Z"
	successMessage     = "Operation completed successfully"
	sampleDataName     = "Sample Data"
)

// Shape describes one response template.
type Shape struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        Kind   `json:"kind"`
	// Schema is a JSON Schema pinning the exact key set of a structured
	// shape. Empty for raw shapes.
	Schema string `json:"-"`

	build func() Response
	match func(body []byte) bool
}

// New returns a fresh copy of the template. It returns nil for the success
// shape, which needs a random source; use Generator.GenerateResponse.
func (s Shape) New() Response {
	if s.build == nil {
		return nil
	}
	return s.build()
}

var xmlErrorBody = mustBuildXMLError()

func mustBuildXMLError() string {
	doc := etree.NewDocument()
	root := doc.CreateElement("error")
	root.CreateElement("code").SetText("500")
	root.CreateElement("message").SetText("Surprise!")
	s, err := doc.WriteToString()
	if err != nil {
		panic("roulette: building xml template: " + err.Error())
	}
	return s
}

// isXMLError reports whether body is an <error> document carrying a code
// and a message.
func isXMLError(body []byte) bool {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(bytes.TrimSpace(body)); err != nil {
		return false
	}
	root := doc.Root()
	if root == nil || root.Tag != "error" {
		return false
	}
	return root.SelectElement("code") != nil && root.SelectElement("message") != nil
}

var successShape = Shape{
	Name:        ShapeSuccess,
	Description: "Success payload with an impossible timestamp and an unpredictable extra field",
	Kind:        KindStructured,
	Schema: `{
  "type": "object",
  "required": ["status", "data", "message"],
  "additionalProperties": false,
  "properties": {
    "status": {"const": "success"},
    "data": {
      "type": "object",
      "required": ["id", "name", "timestamp", "extra_field"],
      "additionalProperties": false,
      "properties": {
        "id": {"type": "integer", "minimum": 1, "maximum": 1000},
        "name": {"type": "string"},
        "timestamp": {"type": "string"},
        "extra_field": {}
      }
    },
    "message": {"type": ["string", "null"]}
  }
}`,
}

// catalog is the ordered list of malformed templates. Entries are never
// mutated; build returns a new value on every call.
var catalog = []Shape{
	{
		Name:        ShapeSuccessWithErrorField,
		Description: "Reports success while also carrying an error",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["status", "error"],
  "additionalProperties": false,
  "properties": {
    "status": {"const": "success"},
    "error": {"type": "string"}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeSuccessWithErrorField, Fields: map[string]interface{}{
				"status": "success",
				"error":  "Something went wrong, but we're calling it success",
			}}
		},
	},
	{
		Name:        ShapeErrorWith200Status,
		Description: "Error body that claims statusCode 200",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["statusCode", "error", "message"],
  "additionalProperties": false,
  "properties": {
    "statusCode": {"const": 200},
    "error": {"type": "string"},
    "message": {"type": "string"}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeErrorWith200Status, Fields: map[string]interface{}{
				"statusCode": 200,
				"error":      "Internal Server Error",
				"message":    "Everything is fine (it's not)",
			}}
		},
	},
	{
		Name:        ShapeNestedError,
		Description: "Error wrapped in an error wrapped in an error",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["error"],
  "additionalProperties": false,
  "properties": {
    "error": {
      "type": "object",
      "required": ["error"],
      "additionalProperties": false,
      "properties": {
        "error": {
          "type": "object",
          "required": ["message"],
          "additionalProperties": false,
          "properties": {"message": {"type": "string"}}
        }
      }
    }
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeNestedError, Fields: map[string]interface{}{
				"error": map[string]interface{}{
					"error": map[string]interface{}{
						"message": "Error within error within error",
					},
				},
			}}
		},
	},
	{
		Name:        ShapePlainText,
		Description: "Plain text body from a JSON endpoint",
		Kind:        KindRaw,
		build: func() Response {
			return Raw{Name: ShapePlainText, Text: plainTextBody}
		},
		match: func(body []byte) bool {
			return string(bytes.TrimSpace(body)) == plainTextBody
		},
	},
	{
		Name:        ShapeXML,
		Description: "XML error document from a JSON endpoint",
		Kind:        KindRaw,
		build: func() Response {
			return Raw{Name: ShapeXML, Text: xmlErrorBody}
		},
		match: isXMLError,
	},
	{
		Name:        ShapeRateLimitWithoutHeaders,
		Description: "Rate limited with a null retry_after",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["message", "retry_after"],
  "additionalProperties": false,
  "properties": {
    "message": {"type": "string"},
    "retry_after": {"type": "null"}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeRateLimitWithoutHeaders, Fields: map[string]interface{}{
				"message":     "Too many requests",
				"retry_after": nil,
			}}
		},
	},
	{
		Name:        ShapeDeprecatedFields,
		Description: "Old and new fields side by side with no deprecation signal",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["old_field", "new_field", "deprecated_since"],
  "additionalProperties": false,
  "properties": {
    "old_field": {"type": "string"},
    "new_field": {"type": "string"},
    "deprecated_since": {"type": "string"}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeDeprecatedFields, Fields: map[string]interface{}{
				"old_field":        "still here",
				"new_field":        "also here",
				"deprecated_since": "2020",
			}}
		},
	},
	{
		Name:        ShapeLeakedCORSHeader,
		Description: "CORS header leaked into the payload",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["data", "Access-Control-Allow-Origin"],
  "additionalProperties": false,
  "properties": {
    "data": {"type": "string"},
    "Access-Control-Allow-Origin": {"const": "*"}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeLeakedCORSHeader, Fields: map[string]interface{}{
				"data":                        "sensitive info",
				"Access-Control-Allow-Origin": "*",
			}}
		},
	},
	{
		Name:        ShapeInconsistentTimestamps,
		Description: "One instant in four incompatible timestamp formats",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["created_at", "updated_at", "deleted_at", "processed_at"],
  "additionalProperties": false,
  "properties": {
    "created_at": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "updated_at": {"type": "integer"},
    "deleted_at": {"type": "string", "pattern": "^[0-9]{2}/[0-9]{2}/[0-9]{4} [0-9]{2}:[0-9]{2}:[0-9]{2}$"},
    "processed_at": {"type": "string", "pattern": "^[A-Z][a-z]+ [0-9]{1,2}, [0-9]{4}$"}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeInconsistentTimestamps, Fields: map[string]interface{}{
				"created_at":   "2023-12-25",
				"updated_at":   1703462400,
				"deleted_at":   "25/12/2023 14:30:45",
				"processed_at": "December 25, 2023",
			}}
		},
	},
	{
		Name:        ShapeNullInsteadOfEmptyArray,
		Description: "Null where an empty list is expected",
		Kind:        KindStructured,
		Schema: `{
  "type": "object",
  "required": ["items", "total"],
  "additionalProperties": false,
  "properties": {
    "items": {"type": "null"},
    "total": {"const": 0}
  }
}`,
		build: func() Response {
			return Structured{Name: ShapeNullInsteadOfEmptyArray, Fields: map[string]interface{}{
				"items": nil,
				"total": 0,
			}}
		},
	},
}

// Shapes returns the malformed templates in catalog order.
func Shapes() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog)
	return out
}

// AllShapes returns the success shape followed by the malformed templates.
func AllShapes() []Shape {
	return append([]Shape{successShape}, Shapes()...)
}

// LookupShape finds a shape by name, including the success shape.
func LookupShape(name string) (Shape, bool) {
	if name == ShapeSuccess {
		return successShape, true
	}
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}
