package discovery

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/mlmd"
	"github.com/vizlens/vizlens/pkg/observability"
	"github.com/vizlens/vizlens/pkg/viewer"
	"github.com/vizlens/vizlens/pkg/vizrender"
)

// runContextType is the metadata-store context type that groups one
// pipeline run's executions.
const runContextType = "run"

// executionStateComplete marks an execution whose outputs are final.
const executionStateComplete = "complete"

// ProgressFunc receives coarse progress percentages as the traversal
// advances. Nil callbacks are allowed.
type ProgressFunc func(percent int)

// Progress checkpoints reported during a traversal, in order.
const (
	ProgressParsed    = 10 // pod name parsed
	ProgressCatalog   = 20 // artifact-type catalog loaded
	ProgressContext   = 40 // run context located
	ProgressExecution = 60 // step execution matched
	ProgressArtifacts = 80 // output events and artifacts loaded
)

// Trace is everything a traversal visited. The lineage renderer reuses
// it to draw the run graph without re-querying the store.
type Trace struct {
	Pod       PodName
	Context   *mlmd.Context
	Execution *mlmd.Execution
	Events    []mlmd.Event
	Artifacts []mlmd.Artifact
	Types     []mlmd.ArtifactType
}

// Empty reports whether the traversal short-circuited before reaching
// any artifacts.
func (t *Trace) Empty() bool {
	return len(t.Types) == 0 || t.Context == nil || t.Execution == nil || len(t.Artifacts) == 0
}

// Resolver discovers and renders visualizations for a pipeline step.
type Resolver struct {
	store    mlmd.Store
	renderer *vizrender.Client
	logger   *log.Logger
}

// NewResolver wires a Resolver over the metadata store and the rendering
// service. Pass nil for logger to discard log output.
func NewResolver(store mlmd.Store, renderer *vizrender.Client, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{store: store, renderer: renderer, logger: logger}
}

// Discover walks the metadata graph for pod and renders every
// recognized output artifact.
//
// An empty artifact-type catalog, a run the store has never seen, a
// step that has not completed, and a step with no recorded outputs all
// yield an empty result with no error.
// Transport failures and render failures surface as errors: unlike the
// declarative path, a discovery result is all-or-nothing.
func (r *Resolver) Discover(ctx context.Context, pod string, progress ProgressFunc) ([]viewer.Config, error) {
	trace, err := r.Trace(ctx, pod, progress)
	if err != nil {
		return nil, err
	}
	if trace.Empty() {
		return nil, nil
	}
	return r.render(ctx, trace)
}

// Trace performs the graph traversal without rendering. Short-circuited
// stages leave the corresponding Trace fields empty.
func (r *Resolver) Trace(ctx context.Context, pod string, progress ProgressFunc) (*Trace, error) {
	if progress == nil {
		progress = func(int) {}
	}

	name, err := ParsePodName(pod)
	if err != nil {
		return nil, err
	}
	progress(ProgressParsed)
	trace := &Trace{Pod: name}

	types, err := r.stageCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		r.logger.Debug("Artifact-type catalog is empty", "pod", pod)
		return trace, nil
	}
	trace.Types = types
	progress(ProgressCatalog)

	runCtx, err := r.stageContext(ctx, name)
	if err != nil {
		return nil, err
	}
	if runCtx == nil {
		r.logger.Debug("No run context recorded", "pod", pod, "context", name.ContextName())
		return trace, nil
	}
	trace.Context = runCtx
	progress(ProgressContext)

	exec, err := r.stageExecution(ctx, runCtx.ID, pod)
	if err != nil {
		return nil, err
	}
	if exec == nil {
		r.logger.Debug("No completed execution for pod", "pod", pod)
		return trace, nil
	}
	trace.Execution = exec
	progress(ProgressExecution)

	events, artifacts, err := r.stageArtifacts(ctx, exec.ID)
	if err != nil {
		return nil, err
	}
	trace.Events = events
	if len(artifacts) == 0 {
		r.logger.Debug("Execution recorded no outputs", "pod", pod)
		return trace, nil
	}
	trace.Artifacts = artifacts
	progress(ProgressArtifacts)

	return trace, nil
}

func (r *Resolver) stageCatalog(ctx context.Context) ([]mlmd.ArtifactType, error) {
	const stage = "catalog"
	observability.Traversal().OnStageStart(ctx, stage)
	start := time.Now()

	types, err := r.store.GetArtifactTypes(ctx)
	observability.Traversal().OnStageComplete(ctx, stage, time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "load artifact types")
	}
	if len(types) == 0 {
		observability.Traversal().OnShortCircuit(ctx, stage)
	}
	return types, nil
}

func (r *Resolver) stageContext(ctx context.Context, name PodName) (*mlmd.Context, error) {
	const stage = "context"
	observability.Traversal().OnStageStart(ctx, stage)
	start := time.Now()

	runCtx, err := r.store.GetContextByTypeAndName(ctx, runContextType, name.ContextName())
	observability.Traversal().OnStageComplete(ctx, stage, time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "look up run context %q", name.ContextName())
	}
	if runCtx == nil {
		observability.Traversal().OnShortCircuit(ctx, stage)
	}
	return runCtx, nil
}

func (r *Resolver) stageExecution(ctx context.Context, contextID int64, pod string) (*mlmd.Execution, error) {
	const stage = "execution"
	observability.Traversal().OnStageStart(ctx, stage)
	start := time.Now()

	execs, err := r.store.GetExecutionsByContext(ctx, contextID)
	observability.Traversal().OnStageComplete(ctx, stage, time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list executions of context %d", contextID)
	}

	for i := range execs {
		if execs[i].Property("kfp_pod_name") == pod && execs[i].Property("state") == executionStateComplete {
			return &execs[i], nil
		}
	}
	observability.Traversal().OnShortCircuit(ctx, stage)
	return nil, nil
}

// stageArtifacts collects the execution's OUTPUT events and loads the
// artifacts behind them. No OUTPUT events is a short-circuit, not an
// error; the returned events still include INPUT edges for the lineage
// renderer.
func (r *Resolver) stageArtifacts(ctx context.Context, executionID int64) ([]mlmd.Event, []mlmd.Artifact, error) {
	const stage = "artifacts"
	observability.Traversal().OnStageStart(ctx, stage)
	start := time.Now()

	events, err := r.store.GetEventsByExecutionIDs(ctx, []int64{executionID})
	if err != nil {
		observability.Traversal().OnStageComplete(ctx, stage, time.Since(start), err)
		return nil, nil, errors.Wrap(errors.ErrCodeNetwork, err, "list events of execution %d", executionID)
	}

	var ids []int64
	for _, ev := range events {
		if ev.Type == mlmd.EventOutput {
			ids = append(ids, ev.ArtifactID)
		}
	}
	if len(ids) == 0 {
		observability.Traversal().OnStageComplete(ctx, stage, time.Since(start), nil)
		observability.Traversal().OnShortCircuit(ctx, stage)
		return events, nil, nil
	}

	artifacts, err := r.store.GetArtifactsByID(ctx, ids)
	observability.Traversal().OnStageComplete(ctx, stage, time.Since(start), err)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeNetwork, err, "load %d artifacts", len(ids))
	}
	return events, artifacts, nil
}
