// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import "time"

//go:generate mockgen -source=clock.go -destination=../mock/mock_clock.go -package=mock

// Clock supplies the wall-clock time used for Last-Modified and Expires.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
