package window

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultGraceInterval 关闭所有窗口后、退出进程前的等待时间
const DefaultGraceInterval = 100 * time.Millisecond

// ShutdownState is the state of the application exit sequence.
type ShutdownState int32

const (
	ShutdownIdle ShutdownState = iota
	ShutdownInProgress
	ShutdownExited
)

func (s ShutdownState) String() string {
	switch s {
	case ShutdownIdle:
		return "idle"
	case ShutdownInProgress:
		return "in_progress"
	case ShutdownExited:
		return "exited"
	default:
		return "unknown"
	}
}

// ShutdownCoordinator closes every window and exits the process, exactly once.
type ShutdownCoordinator struct {
	registry   *Registry
	terminator Terminator
	grace      time.Duration
	state      atomic.Int32
	done       chan struct{}
}

// NewShutdownCoordinator 创建退出协调器，grace <= 0 时使用默认值
func NewShutdownCoordinator(registry *Registry, terminator Terminator, grace time.Duration) *ShutdownCoordinator {
	if grace <= 0 {
		grace = DefaultGraceInterval
	}
	return &ShutdownCoordinator{
		registry:   registry,
		terminator: terminator,
		grace:      grace,
		done:       make(chan struct{}),
	}
}

// State returns the current state of the sequence.
func (s *ShutdownCoordinator) State() ShutdownState {
	return ShutdownState(s.state.Load())
}

// GraceInterval returns the delay between closing windows and exiting.
func (s *ShutdownCoordinator) GraceInterval() time.Duration {
	return s.grace
}

// ShuttingDown reports whether the exit sequence has started.
func (s *ShutdownCoordinator) ShuttingDown() bool {
	return s.State() != ShutdownIdle
}

// Done is closed after the process exit call has been made.
func (s *ShutdownCoordinator) Done() <-chan struct{} {
	return s.done
}

// begin starts the exit sequence on a worker goroutine.
// Only the primary window's close observer calls it; later calls are ignored.
func (s *ShutdownCoordinator) begin() bool {
	if !s.state.CompareAndSwap(int32(ShutdownIdle), int32(ShutdownInProgress)) {
		log.Printf("[Shutdown] Already %s, ignoring", s.State())
		return false
	}
	go s.run(uuid.NewString())
	return true
}

func (s *ShutdownCoordinator) run(seq string) {
	// 先封闭注册表，之后创建的窗口不会漏关
	windows := s.registry.seal()
	log.Printf("[Shutdown] Sequence %s: closing %d windows", seq, len(windows))

	// Step 1: 请求关闭所有窗口（顺序不保证，失败不重试）
	var g errgroup.Group
	for _, w := range windows {
		g.Go(func() error {
			if err := w.Close(); err != nil {
				log.Printf("[Shutdown] Failed to close %s: %v", w.ID(), err)
				return err
			}
			s.registry.Remove(w.ID(), w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[Shutdown] Some windows failed to close, continuing")
	}

	// Step 2: 等待窗口完成清理
	time.Sleep(s.grace)

	// Step 3: 退出进程
	s.state.Store(int32(ShutdownExited))
	log.Printf("[Shutdown] Sequence %s: exiting", seq)
	err := s.terminator.Exit(0)
	close(s.done)
	if err != nil {
		panic(fmt.Sprintf("terminate process: %v", err))
	}
}
