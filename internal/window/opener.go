package window

import (
	"errors"
	"log"

	"golang.org/x/sync/singleflight"
)

// Opener 按需创建二级窗口；已存在时只重新显示并聚焦
type Opener struct {
	controller *Controller
	manager    Manager
	group      singleflight.Group
}

// NewOpener 创建窗口打开器
func NewOpener(controller *Controller, manager Manager) *Opener {
	return &Opener{
		controller: controller,
		manager:    manager,
	}
}

// OpenSettings shows the settings window, creating it with url if absent.
func (o *Opener) OpenSettings(url string) error {
	return o.Open(SettingsOptions(url))
}

// Open ensures exactly one window exists for opts.ID and brings it to front.
func (o *Opener) Open(opts Options) error {
	if opts.ID == PrimaryWindowID {
		return opError("open", opts.ID, errors.New("primary window cannot be opened lazily"))
	}
	_, err, _ := o.group.Do(opts.ID, func() (any, error) {
		return nil, o.open(opts)
	})
	return err
}

func (o *Opener) open(opts Options) error {
	if o.controller.ShuttingDown() {
		return opError("open", opts.ID, ErrShuttingDown)
	}
	registry := o.controller.Registry()

	if w, ok := registry.Lookup(opts.ID); ok {
		if err := w.Show(); err != nil {
			return opError("show", opts.ID, err)
		}
		if err := w.Focus(); err != nil {
			return opError("focus", opts.ID, err)
		}
		log.Printf("[Opener] Re-showed existing window %s", opts.ID)
		return nil
	}

	w, err := o.manager.Create(opts)
	if err != nil {
		return opError("create", opts.ID, err)
	}
	if err := o.controller.Attach(w); err != nil {
		if closeErr := w.Close(); closeErr != nil {
			log.Printf("[Opener] Failed to discard window %s: %v", opts.ID, closeErr)
		}
		return opError("create", opts.ID, err)
	}

	log.Printf("[Opener] Created window %s (%dx%d, %s)", opts.ID, opts.Width, opts.Height, opts.URL)
	return nil
}
