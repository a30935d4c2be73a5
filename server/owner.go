package server

import (
	"github.com/rs/zerolog/log"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// portOwner returns the pid of a local process listening on port, or 0
// when it cannot be seen (another user's process, another namespace).
func portOwner(port int) int32 {
	conns, err := psnet.Connections("tcp")
	if err != nil {
		log.Debug().Err(err).Msg("unable to list tcp connections")
		return 0
	}
	for _, c := range conns {
		if c.Status == "LISTEN" && int(c.Laddr.Port) == port && c.Pid != 0 {
			return c.Pid
		}
	}
	return 0
}

func logPortOwner(port int) {
	if pid := portOwner(port); pid != 0 {
		log.Debug().Int("port", port).Int32("pid", pid).Msg("port already held")
	}
}
