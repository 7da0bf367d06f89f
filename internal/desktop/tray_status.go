package desktop

import (
	"fmt"
	"strings"

	"github.com/awsl-project/opalchat/internal/window"
)

// windowsTooltip 列出已注册窗口，如 "OpalChat: main (1a2b3c4d), settings (5e6f7a8b)"
func windowsTooltip(infos []window.Info) string {
	if len(infos) == 0 {
		return "OpalChat"
	}
	parts := make([]string, 0, len(infos))
	for _, info := range infos {
		short := info.InstanceID
		if len(short) > 8 {
			short = short[:8]
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", info.ID, short))
	}
	return "OpalChat: " + strings.Join(parts, ", ")
}
