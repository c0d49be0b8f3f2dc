// Package mlmd models a pipeline metadata graph store and its
// gRPC-gateway JSON wire types.
//
// The store records what a pipeline run actually produced: typed
// artifacts, the executions that created them, events linking the two,
// and contexts grouping executions by run. Numeric IDs arrive as JSON
// strings on the wire (int64 fields under gRPC-gateway encoding), so all
// ID fields carry the string option.
package mlmd

// Value is a typed property value. Exactly one field is set.
type Value struct {
	StringValue *string  `json:"stringValue,omitempty"`
	IntValue    *int64   `json:"intValue,string,omitempty"`
	DoubleValue *float64 `json:"doubleValue,omitempty"`
}

// ArtifactType names a kind of artifact, e.g. "ExampleStatistics".
type ArtifactType struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

// Context groups executions, e.g. all executions of one pipeline run.
type Context struct {
	ID         int64            `json:"id,string"`
	TypeID     int64            `json:"typeId,string"`
	Name       string           `json:"name"`
	Properties map[string]Value `json:"properties,omitempty"`
}

// Execution is one recorded step of a pipeline run.
type Execution struct {
	ID               int64            `json:"id,string"`
	TypeID           int64            `json:"typeId,string"`
	Properties       map[string]Value `json:"properties,omitempty"`
	CustomProperties map[string]Value `json:"customProperties,omitempty"`
}

// Property returns the string value of the named property, looking at
// declared properties first and custom properties second. Missing or
// non-string properties yield "".
func (e Execution) Property(name string) string {
	if v, ok := e.Properties[name]; ok && v.StringValue != nil {
		return *v.StringValue
	}
	if v, ok := e.CustomProperties[name]; ok && v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

// Event types relevant to lineage traversal.
const (
	EventInput  = "INPUT"
	EventOutput = "OUTPUT"
)

// Event links an execution to an artifact it consumed or produced.
type Event struct {
	ArtifactID  int64  `json:"artifactId,string"`
	ExecutionID int64  `json:"executionId,string"`
	Type        string `json:"type"`
}

// Artifact is one recorded output with its storage location.
type Artifact struct {
	ID         int64            `json:"id,string"`
	TypeID     int64            `json:"typeId,string"`
	URI        string           `json:"uri"`
	Properties map[string]Value `json:"properties,omitempty"`
}
