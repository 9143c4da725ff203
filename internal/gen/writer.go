package gen

import (
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/logger"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer is the single owner of the output file system. Producers hand it
// artifacts through a bounded queue; one goroutine writes them in arrival
// order.
type Writer struct {
	fs    afero.Fs
	queue chan Artifact
	done  chan struct{}

	mu      sync.Mutex
	err     error
	written []string
}

// UseWriter starts a Writer over fs, runs fn with it and drains and stops
// the Writer on every exit path, panics included, before returning. fn must
// not retain the Writer. The error of fn wins over a write error.
func UseWriter(fs afero.Fs, queueSize int, fn func(*Writer) error) (err error) {
	if queueSize < 1 {
		queueSize = 1
	}

	w := &Writer{
		fs:    fs,
		queue: make(chan Artifact, queueSize),
		done:  make(chan struct{}),
	}

	go w.run()

	defer func() {
		close(w.queue)
		<-w.done

		logger.Logger.Debugw("writer drained", "artifacts", len(w.writtenPaths()))

		if err == nil {
			err = w.Err()
		}
	}()

	return fn(w)
}

// Write queues a for writing, blocking while the queue is full. It returns
// the first write failure, if one already happened.
func (w *Writer) Write(a Artifact) error {
	if err := w.Err(); err != nil {
		return err
	}

	w.queue <- a

	return nil
}

// Err returns the first write failure.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

// writtenPaths returns the paths written so far, in write order.
func (w *Writer) writtenPaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.written...)
}

func (w *Writer) run() {
	defer close(w.done)

	for a := range w.queue {
		if w.Err() != nil {
			continue // drain
		}

		err := writeAtomically(w.fs, a)

		w.mu.Lock()
		if err != nil {
			w.err = err
		} else {
			w.written = append(w.written, a.Path)
		}
		w.mu.Unlock()

		if err != nil {
			logger.Logger.Errorw("writing artifact", "path", a.Path, "error", err)
			continue
		}

		logger.Logger.Debugw("artifact written", "path", a.Path, "bytes", len(a.Content))
	}
}

// writeAtomically writes a next to its destination and renames it into place.
func writeAtomically(fs afero.Fs, a Artifact) error {
	if err := fs.MkdirAll(filepath.Dir(a.Path), dirPerm); err != nil {
		return errors.Wrapf(err, "creating directory for %s", a.Path)
	}

	tmp := a.Path + ".tmp"

	if err := afero.WriteFile(fs, tmp, a.Content, filePerm); err != nil {
		return errors.Wrapf(err, "writing file %s", tmp)
	}

	if err := fs.Rename(tmp, a.Path); err != nil {
		_ = fs.Remove(tmp)
		return errors.Wrapf(err, "renaming %s", tmp)
	}

	return nil
}
