// File: utils/constants.go
package utils

import "time"

// LockKeyPrefix is the prefix used for Redis booking lock keys.
const LockKeyPrefix = "lock:"

// HealthCheckInterval is how often external dependencies are pinged.
const HealthCheckInterval = 60 * time.Second

// pingTimeout bounds a single health probe.
const pingTimeout = 3 * time.Second
