package desktop

import (
	"fmt"
	"log"
	"os"
)

// ProcessTerminator exits the current process.
type ProcessTerminator struct {
	exit func(code int)
}

// NewProcessTerminator 创建进程终止器
func NewProcessTerminator() *ProcessTerminator {
	return &ProcessTerminator{exit: os.Exit}
}

// Exit terminates the process with code. Returning at all means the exit failed.
func (t *ProcessTerminator) Exit(code int) error {
	log.Printf("[Desktop] Exiting with code %d", code)
	t.exit(code)
	return fmt.Errorf("process still running after exit(%d)", code)
}
