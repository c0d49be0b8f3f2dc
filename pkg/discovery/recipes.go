package discovery

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vizlens/vizlens/pkg/mlmd"
	"github.com/vizlens/vizlens/pkg/viewer"
	"github.com/vizlens/vizlens/pkg/vizrender"
)

// Artifact type names the resolver knows how to visualize. Artifacts of
// any other type are ignored.
const (
	typeExampleStatistics = "ExampleStatistics"
	typeSchema            = "Schema"
	typeExampleAnomalies  = "ExampleAnomalies"
	typeModelEvaluation   = "ModelEvaluation"
)

// renderJob is one request to the rendering service. Code is set for
// script jobs; Renderer names a canonical renderer otherwise.
type renderJob struct {
	Renderer string
	Source   string
	Code     []string
}

// statsScript visualizes a statistics artifact. The rendering service
// binds the job's source to the `source` variable.
var statsScript = []string{
	"import tensorflow_data_validation as tfdv",
	"stats = tfdv.load_statistics(source)",
	"tfdv.visualize_statistics(stats)",
}

var schemaScript = []string{
	"import tensorflow_data_validation as tfdv",
	"schema = tfdv.load_schema_text(source)",
	"tfdv.display_schema(schema)",
}

var anomaliesScript = []string{
	"import tensorflow_data_validation as tfdv",
	"anomalies = tfdv.load_anomalies_text(source)",
	"tfdv.display_anomalies(anomalies)",
}

// recipesFor maps the artifacts of one execution to render jobs, in a
// fixed category order: statistics, schema, anomalies, evaluation.
// Artifact order is preserved within each category.
func recipesFor(types []mlmd.ArtifactType, artifacts []mlmd.Artifact) []renderJob {
	var jobs []renderJob

	for _, uri := range mlmd.FilterURIsByType(types, artifacts, typeExampleStatistics) {
		jobs = append(jobs, renderJob{
			Renderer: vizrender.TypeCustom,
			Source:   uri + "/stats_tfrecord",
			Code:     statsScript,
		})
	}
	for _, uri := range mlmd.FilterURIsByType(types, artifacts, typeSchema) {
		jobs = append(jobs, renderJob{
			Renderer: vizrender.TypeCustom,
			Source:   uri + "/schema.pbtxt",
			Code:     schemaScript,
		})
	}
	for _, uri := range mlmd.FilterURIsByType(types, artifacts, typeExampleAnomalies) {
		jobs = append(jobs, renderJob{
			Renderer: vizrender.TypeCustom,
			Source:   uri + "/anomalies.pbtxt",
			Code:     anomaliesScript,
		})
	}
	for _, uri := range mlmd.FilterURIsByType(types, artifacts, typeModelEvaluation) {
		jobs = append(jobs, renderJob{Renderer: "tfma", Source: uri})
	}

	return jobs
}

// render executes every job concurrently. Job order is preserved in the
// result; the first failure cancels the remaining jobs and fails the
// whole call.
func (r *Resolver) render(ctx context.Context, trace *Trace) ([]viewer.Config, error) {
	jobs := recipesFor(trace.Types, trace.Artifacts)
	if len(jobs) == 0 {
		return nil, nil
	}

	configs := make([]viewer.Config, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			var (
				cfg viewer.Config
				err error
			)
			if job.Renderer == vizrender.TypeCustom {
				cfg, err = vizrender.BuildScriptViewer(gctx, r.renderer, job.Source, job.Code)
			} else {
				cfg, err = vizrender.BuildCanonicalViewer(gctx, r.renderer, job.Renderer, job.Source)
			}
			if err != nil {
				return err
			}
			configs[i] = cfg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return configs, nil
}
