package realtime

import (
	"sync"
)

var (
	instance *Client
	once     sync.Once
)

// GetClient returns the process-wide realtime client. At most one live
// connection exists per process; services receive this client rather than
// creating their own.
func GetClient(cfg ...Config) *Client {
	once.Do(func() {
		var c Config
		if len(cfg) > 0 {
			c = cfg[0]
		} else {
			c = ConfigFromSettings()
		}
		instance = NewClient(c)
	})
	return instance
}
