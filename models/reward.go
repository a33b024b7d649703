// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reward is a reward tier offered by a project to its backers.
type Reward struct {
	ID          int64           `json:"id"`
	ProjectID   int64           `json:"projectId"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`

	// Quantity is the number of available units; nil means unlimited.
	Quantity *int `json:"quantity"`

	ShippingRegions []string  `json:"shippingRegions"`
	CreatedAt       time.Time `json:"createdAt"`
}
