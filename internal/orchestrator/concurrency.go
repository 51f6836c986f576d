package orchestrator

import (
	"sync"

	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// analyzeConcurrently fills results[i] with the analysis of paths[i],
// dispatching across a fixed-size worker pool the way the teacher's
// FileProcessor does (processor/processor.go: a channel of paths, a
// fixed number of worker goroutines, results aggregated after every
// worker finishes) -- but keyed by index instead of a results channel,
// since the spec requires output in glob order regardless of which
// worker finished which file first. A fatal error does not stop the
// pool: workers keep draining the job channel until every path has been
// analyzed, but the first fatal error is captured and returned once all
// workers finish, so it still aborts AnalyzeProject rather than being
// swallowed the way a recoverable error is.
func (o *Orchestrator) analyzeConcurrently(paths []string, results []*codeintel.FileAnalysisResult) error {
	type job struct {
		index int
		path  string
	}

	jobs := make(chan job, len(paths))
	for i, p := range paths {
		jobs <- job{index: i, path: p}
	}
	close(jobs)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		fatalErr error
	)
	workers := o.cfg.Concurrency
	if workers > len(paths) {
		workers = len(paths)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				r, err := o.analyzeFileLogged(j.path)
				if err != nil {
					mu.Lock()
					if fatalErr == nil {
						fatalErr = err
					}
					mu.Unlock()
					continue
				}
				results[j.index] = r
			}
		}()
	}
	wg.Wait()
	return fatalErr
}
