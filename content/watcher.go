package content

import (
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/securecodex/cityquest/util/log"
)

// Reloader watches a Lua content file and serves the freshest pack
// that loaded successfully. Scenes pick the pack up at session start,
// so an edit never changes a conversation that is already running.
type Reloader struct {
	path    string
	watcher *fsnotify.Watcher
	current atomic.Value // *Pack
	done    chan struct{}
}

func NewReloader(path string) (*Reloader, error) {
	pack, err := LoadLuaFile(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	r := &Reloader{
		path:    path,
		watcher: w,
		done:    make(chan struct{}),
	}
	r.current.Store(pack)
	go r.watchLoop()
	return r, nil
}

// Current implements Provider.
func (r *Reloader) Current() *Pack {
	return r.current.Load().(*Pack)
}

func (r *Reloader) Close() error {
	close(r.done)
	return r.watcher.Close()
}

func (r *Reloader) watchLoop() {
	// fsnotify fires write events more than once per save depending
	// on the editor; pending writes within this window collapse into
	// one reload. See https://github.com/fsnotify/fsnotify/issues/122
	const pendingDuration = 100 * time.Millisecond
	pending := time.NewTimer(pendingDuration)
	if !pending.Stop() {
		<-pending.C
	}

	for {
		select {
		case <-r.done:
			return
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !pending.Stop() {
				select {
				case <-pending.C:
				default:
				}
			}
			pending.Reset(pendingDuration)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Infof("content: watch error: %v", err)
		case <-pending.C:
			r.reload()
		}
	}
}

func (r *Reloader) reload() {
	pack, err := LoadLuaFile(r.path)
	if err != nil {
		// keep serving the last good pack.
		log.Infof("content: reload failed, keeping previous pack: %v", err)
		return
	}
	r.current.Store(pack)
	log.Debugf("content: reloaded %s", r.path)
}
