package bundle

import (
	"context"
	"log"
	"ovpnapi/internal/utils"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const refreshDebounce = 50 * time.Millisecond

func NewBundleIndex(dir string) *BundleIndex {
	return &BundleIndex{
		dir:               dir,
		bundles:           map[string]Bundle{},
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

// BundleIndex tracks the .ovpn bundles openvpn-ctl leaves in the output
// directory. While Watch runs the index is kept current from fsnotify
// events; otherwise List rescans the directory on every call.
type BundleIndex struct {
	dir               string
	mu                sync.RWMutex
	bundles           map[string]Bundle
	watching          atomic.Bool
	filesystemHandler utils.FilesystemHandler
}

func (i *BundleIndex) scanDir() string {
	if i.dir == "" {
		return "."
	}
	return i.dir
}

func (i *BundleIndex) Refresh() error {
	dir := i.scanDir()
	entries, err := i.filesystemHandler.ReadDir(dir)
	if err != nil {
		if i.filesystemHandler.IsNotExist(err) {
			i.mu.Lock()
			i.bundles = map[string]Bundle{}
			i.mu.Unlock()
			return nil
		}
		return err
	}

	bundles := make(map[string]Bundle, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), utils.BundleExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		username := strings.TrimSuffix(e.Name(), utils.BundleExt)
		bundles[username] = Bundle{
			Username:   username,
			Path:       filepath.Join(i.dir, e.Name()),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		}
	}

	i.mu.Lock()
	i.bundles = bundles
	i.mu.Unlock()
	return nil
}

func (i *BundleIndex) List() ([]Bundle, error) {
	if !i.watching.Load() {
		if err := i.Refresh(); err != nil {
			return nil, err
		}
	}

	i.mu.RLock()
	list := make([]Bundle, 0, len(i.bundles))
	for _, b := range i.bundles {
		list = append(list, b)
	}
	i.mu.RUnlock()

	sort.Slice(list, func(a, b int) bool {
		return list[a].Username < list[b].Username
	})
	return list, nil
}

// Watch keeps the index in sync with the output directory until ctx is
// done. It is a no-op when no output directory is configured.
func (i *BundleIndex) Watch(ctx context.Context) error {
	if i.dir == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(i.dir); err != nil {
		return err
	}
	if err := i.Refresh(); err != nil {
		return err
	}
	i.watching.Store(true)
	defer i.watching.Store(false)

	var pending atomic.Bool
	trigger := func() {
		if pending.CompareAndSwap(false, true) {
			go func() {
				time.Sleep(refreshDebounce)
				pending.Store(false)
				if err := i.Refresh(); err != nil {
					log.Printf("[!] bundle index refresh failed: %v", err)
				}
			}()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, utils.BundleExt) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				trigger()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("[!] bundle watcher: %v", err)
		}
	}
}
