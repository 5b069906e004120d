package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/chunkpos/chunk"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Fragment is a chunk of a file's content together with its place in the file.
type Fragment struct {
	Index  int         // sequence number of the fragment, starting at 0
	Offset int64       // byte offset of the fragment within the file
	Chunk  chunk.Chunk // indexed content
}

// Loader reads an OS file fragment by fragment.
type Loader struct {
	path     string         // file name
	info     os.FileInfo    // result from Stat(path)
	file     *os.File       // file handle
	fragSize int64          // bytes per fragment
	cast     *caster.Caster // broadcaster for loaded fragments
	mx       sync.Mutex     // guards started and lastErr
	started  bool
	done     chan struct{} // closed when loading has finished
	lastErr  error         // remember last I/O error
}

// Open opens a text file for loading. Clients may recommend a fragment length;
// a value <= 0 lets Open choose a sensible default from the file size.
// Opening is always done synchronously. The file is released when loading
// has finished; a loader which will never be started must be closed.
func Open(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 {
		fragSize = defaultFragSize(fi.Size())
	}
	tracer().Debugf("opened %s (%d bytes), fragment size %d", name, fi.Size(), fragSize)
	return &Loader{
		path:     name,
		info:     fi,
		file:     file,
		fragSize: fragSize,
		cast:     caster.New(nil),
		done:     make(chan struct{}),
	}, nil
}

func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

// Size returns the size of the file in bytes.
func (l *Loader) Size() int64 {
	return l.info.Size()
}

// FragmentCount returns the number of fragments the file will be split into.
func (l *Loader) FragmentCount() int {
	return int((l.info.Size() + l.fragSize - 1) / l.fragSize)
}

// Subscribe returns a channel receiving every fragment in file order. The
// channel is closed when loading has finished or ctx is done. Subscriptions
// must be made before Start.
func (l *Loader) Subscribe(ctx context.Context) (<-chan Fragment, error) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.started {
		return nil, ErrStarted
	}
	sub, ok := l.cast.Sub(ctx, 1)
	if !ok {
		return nil, ErrStarted
	}
	out := make(chan Fragment)
	go func() {
		defer close(out)
		for m := range sub {
			select {
			case out <- m.(Fragment):
			case <-ctx.Done():
				for range sub { // caster drops the subscription for a done ctx
				}
				return
			}
		}
	}()
	return out, nil
}

// Start loads all fragments in the background and publishes them to
// subscribers. Calling Start more than once has no effect.
func (l *Loader) Start() {
	l.mx.Lock()
	if l.started {
		l.mx.Unlock()
		return
	}
	l.started = true
	l.mx.Unlock()
	go l.loadAllFragments()
}

// Close releases a loader which has not been started: the file is closed and
// subscriptions end without fragments. For a started loader Close waits for
// loading to finish, which releases the file as well.
func (l *Loader) Close() error {
	l.mx.Lock()
	if l.started {
		l.mx.Unlock()
		<-l.done
		return nil
	}
	l.started = true
	l.mx.Unlock()
	l.cast.Close()
	close(l.done)
	return l.file.Close()
}

// Wait blocks until loading has finished and returns the first I/O error, if any.
func (l *Loader) Wait() error {
	<-l.done
	return l.Err()
}

// Err returns the last I/O error encountered while loading.
func (l *Loader) Err() error {
	l.mx.Lock()
	defer l.mx.Unlock()
	return l.lastErr
}

func (l *Loader) setErr(err error) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.lastErr == nil {
		l.lastErr = err
	}
}

// --- File loading goroutine ------------------------------------------------

func (l *Loader) loadAllFragments() {
	defer close(l.done)
	defer l.file.Close()
	defer l.cast.Close()
	size := l.info.Size()
	index := 0
	for pos := int64(0); pos < size; pos += l.fragSize {
		length := min(l.fragSize, size-pos)
		buf := make([]byte, length)
		cnt, err := l.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			l.setErr(fmt.Errorf("loading text fragment at %d: %w", pos, err))
			return
		} else if int64(cnt) < length {
			l.setErr(fmt.Errorf("%w: %d of %d bytes at %d", ErrShortRead, cnt, length, pos))
			return
		}
		l.cast.Pub(Fragment{Index: index, Offset: pos, Chunk: chunk.NewBytes(buf)})
		index++
	}
	tracer().Debugf("loaded %d fragments of %s", index, l.path)
}

// Load reads a text file as a sequence of chunks. fragSize is a recommended
// chunk length in bytes; 0 selects a default.
func Load(name string, fragSize int64) ([]chunk.Chunk, error) {
	l, err := Open(name, fragSize)
	if err != nil {
		return nil, err
	}
	frags, err := l.Subscribe(context.Background())
	if err != nil {
		return nil, err
	}
	l.Start()
	chunks := make([]chunk.Chunk, 0, l.FragmentCount())
	for f := range frags {
		chunks = append(chunks, f.Chunk)
	}
	if err := l.Wait(); err != nil {
		return nil, err
	}
	return chunks, nil
}
