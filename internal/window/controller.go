package window

import (
	"fmt"
	"log"
)

// Controller 拦截所有窗口的关闭请求，按窗口策略隐藏或触发退出
type Controller struct {
	registry *Registry
	shutdown *ShutdownCoordinator
}

// NewController 创建窗口生命周期控制器
func NewController(registry *Registry, shutdown *ShutdownCoordinator) *Controller {
	return &Controller{
		registry: registry,
		shutdown: shutdown,
	}
}

// Registry returns the registry the controller tracks windows in.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// ShuttingDown reports whether the application has started exiting.
func (c *Controller) ShuttingDown() bool {
	return c.shutdown.ShuttingDown()
}

// Attach registers w and installs its close-request observer.
// Attaching the same window twice installs the observer once.
func (c *Controller) Attach(w Window) error {
	policy, first, err := c.registry.claim(w)
	if err != nil {
		return fmt.Errorf("attach %s: %w", w.ID(), err)
	}
	if !first {
		log.Printf("[Window] Close policy already attached to %s", w.ID())
		return nil
	}

	w.OnCloseRequest(c.observer(w, policy))
	log.Printf("[Window] Attached %s policy to %s (instance %s)", policy, w.ID(), c.registry.instanceID(w.ID()))
	return nil
}

// RequestClose delivers a user-style close request to a tracked window.
func (c *Controller) RequestClose(id string) error {
	w, policy, ok := c.registry.attached(id)
	if !ok {
		return fmt.Errorf("close %s: %w", id, ErrUnknownWindow)
	}
	c.observer(w, policy)(NewCloseRequest(id))
	return nil
}

func (c *Controller) observer(w Window, policy Policy) func(*CloseRequest) {
	return func(req *CloseRequest) {
		req.PreventDefault()

		switch policy {
		case PolicyShutdown:
			log.Printf("[Window] Close requested on %s, shutting down", w.ID())
			c.shutdown.begin()
		default:
			log.Printf("[Window] Close requested on %s, hiding", w.ID())
			if err := w.Hide(); err != nil {
				log.Printf("[Window] Failed to hide %s: %v", w.ID(), err)
			}
		}
	}
}
