// Package discovery resolves visualizations for a pipeline step by
// traversing the metadata graph store instead of reading a declared
// output-metadata document.
//
// Given only a step's pod name, the resolver loads the artifact-type
// catalog, then walks context → executions → output events → artifacts,
// classifies the artifacts it finds, and asks the rendering service to
// produce HTML for each known artifact kind.
// Runs that recorded nothing short-circuit to an empty result; only
// transport failures surface as errors.
package discovery

import (
	"strings"

	"github.com/vizlens/vizlens/pkg/errors"
)

// PodName is a parsed pipeline step pod name. Pod names follow the
// pattern <pipeline>-<run suffix>-<pod suffix>, where the pipeline part
// may itself contain dashes.
type PodName struct {
	// Pod is the full pod name as given.
	Pod string
	// Pipeline is the pipeline name with dashes folded to underscores,
	// matching how the metadata store records pipeline names.
	Pipeline string
	// RunID is the run identifier: the pod name minus its last segment.
	RunID string
}

// ContextName is the metadata-store context name for the run this pod
// belongs to.
func (p PodName) ContextName() string {
	return p.Pipeline + "." + p.RunID
}

// ParsePodName splits a pod name into its pipeline and run parts. A name
// with fewer than three dash-separated segments cannot carry all three
// parts and is an INVALID_POD_NAME error, detected before any network
// call is made.
func ParsePodName(pod string) (PodName, error) {
	parts := strings.Split(pod, "-")
	if len(parts) < 3 {
		return PodName{}, errors.New(errors.ErrCodeInvalidPodName,
			"pod name %q has %d segments, want at least 3 (pipeline-run-pod)", pod, len(parts))
	}
	return PodName{
		Pod:      pod,
		Pipeline: strings.Join(parts[:len(parts)-2], "_"),
		RunID:    strings.Join(parts[:len(parts)-1], "-"),
	}, nil
}
