/*
Package batch applies a canvas operation to every BMP file below a directory
using a pool of workers.
*/
package batch

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bodgit/bitmap"
)

// DefaultWorkers is the number of files processed concurrently when no
// other count is given.
const DefaultWorkers = 10

// maxFileSize is the largest file considered, anything bigger is skipped.
const maxFileSize = 64 << (10 * 2)

// Processor runs operations over directories of BMP files.
type Processor struct {
	workers int
	logger  *log.Logger
}

// New returns a Processor using the given number of workers. A nil logger
// discards all output.
func New(workers int, logger *log.Logger) *Processor {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Processor{
		workers: workers,
		logger:  logger,
	}
}

type job struct {
	src, dst string
}

func isBMP(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".bmp")
}

func (p *Processor) findFiles(ctx context.Context, base, out string) (<-chan job, <-chan error, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s: not a directory", base)
	}

	jobs := make(chan job)
	errc := make(chan error, 1)
	go func() {
		defer close(jobs)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Don't descend into the output directory if it's below the input
			if info.Mode().IsDir() && out != "" && file == out && file != base {
				return filepath.SkipDir
			}

			if !info.Mode().IsRegular() || !isBMP(file) {
				return nil
			}

			if info.Size() > maxFileSize {
				p.logger.Printf("Skipping \"%s\", too large\n", file)
				return nil
			}

			j := job{src: file, dst: file}
			if out != "" {
				rel, err := filepath.Rel(base, file)
				if err != nil {
					return err
				}
				j.dst = filepath.Join(out, rel)
			}

			select {
			case jobs <- j:
			case <-ctx.Done():
				return ctx.Err()
			}

			return nil
		})
	}()
	return jobs, errc, nil
}

func (p *Processor) fileWorker(ctx context.Context, in <-chan job, op Op, done *atomic.Int64) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for j := range in {
			if ctx.Err() != nil {
				return
			}

			if err := p.process(j, op); err != nil {
				errc <- err
				return
			}
			done.Add(1)
		}
	}()
	return errc, nil
}

func (p *Processor) process(j job, op Op) error {
	c, err := bitmap.Load(j.src)
	if err != nil {
		return fmt.Errorf("%s: %w", j.src, err)
	}

	result, err := op(c)
	if err != nil {
		return fmt.Errorf("%s: %w", j.src, err)
	}

	if err := os.MkdirAll(filepath.Dir(j.dst), 0o755); err != nil {
		return err
	}

	if err := result.Save(j.dst); err != nil {
		return err
	}
	p.logger.Printf("Processed \"%s\" (%s) to \"%s\" (%s)\n", j.src, c, j.dst, result)

	return nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Run applies op to every BMP file below path. Results are written below
// out, mirroring the layout of path, or over the original files if out is
// empty. It returns the number of files written, stopping at the first
// error.
func (p *Processor) Run(ctx context.Context, path, out string, op Op) (int, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}

	if out != "" {
		if out, err = filepath.Abs(out); err != nil {
			return 0, err
		}
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var (
		done     atomic.Int64
		errcList []<-chan error
	)

	jobs, errc, err := p.findFiles(ctx, dir, out)
	if err != nil {
		return 0, err
	}
	errcList = append(errcList, errc)

	for i := 0; i < p.workers; i++ {
		errc, err := p.fileWorker(ctx, jobs, op, &done)
		if err != nil {
			return 0, err
		}
		errcList = append(errcList, errc)
	}

	err = waitForPipeline(errcList...)
	return int(done.Load()), err
}
