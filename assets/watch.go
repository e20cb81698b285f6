package assets

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/milk9111/auramixer/audio"
)

const watchQuiet = 500 * time.Millisecond

// Watcher reports that asset files were created, changed, renamed or
// removed in the category folders. A burst of changes yields one event,
// sent once the folders have been quiet for a while; it carries the last
// changed path.
type Watcher struct {
	watcher *fsnotify.Watcher
	quiet   time.Duration
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(watchQuiet, dirs...)
}

func newWatcher(quiet time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		quiet:   quiet,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var (
		last   string
		timer  *time.Timer
		settle <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isAssetFile(event.Name) {
				continue
			}
			last = event.Name
			if timer == nil {
				timer = time.NewTimer(w.quiet)
			} else {
				timer.Reset(w.quiet)
			}
			settle = timer.C
		case <-settle:
			settle = nil
			select {
			case w.Events <- last:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isAssetFile(path string) bool {
	return hasExt(path, imageExtensions) || hasExt(path, audio.Extensions)
}
