// Package lineage renders the metadata graph around one pipeline step as
// a diagram: the step's execution in the middle, consumed artifacts
// above, produced artifacts below.
package lineage

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/vizlens/vizlens/pkg/discovery"
	"github.com/vizlens/vizlens/pkg/mlmd"
)

// ToDOT converts a traversal trace to Graphviz DOT. Input artifacts the
// trace did not resolve are drawn as bare ID placeholders.
func ToDOT(trace *discovery.Trace) string {
	var buf bytes.Buffer
	buf.WriteString("digraph lineage {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	execID := "execution"
	fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=lightblue, label=%q];\n",
		execID, trace.Pod.Pod)

	typeNames := make(map[int64]string, len(trace.Types))
	for _, t := range trace.Types {
		typeNames[t.ID] = t.Name
	}
	resolved := make(map[int64]mlmd.Artifact, len(trace.Artifacts))
	for _, a := range trace.Artifacts {
		resolved[a.ID] = a
	}

	for _, ev := range trace.Events {
		node := "artifact_" + strconv.FormatInt(ev.ArtifactID, 10)
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=white, label=%q];\n",
			node, artifactLabel(ev.ArtifactID, resolved, typeNames))
		if ev.Type == mlmd.EventOutput {
			fmt.Fprintf(&buf, "  %q -> %q;\n", execID, node)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", node, execID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func artifactLabel(id int64, resolved map[int64]mlmd.Artifact, typeNames map[int64]string) string {
	a, ok := resolved[id]
	if !ok {
		return fmt.Sprintf("artifact %d", id)
	}
	name := typeNames[a.TypeID]
	if name == "" {
		name = fmt.Sprintf("artifact %d", id)
	}
	return name + "\n" + a.URI
}
