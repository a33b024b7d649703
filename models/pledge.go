// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a pledge.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Pledge is a backer's monetary commitment to a project, optionally tied
// to a reward tier.
type Pledge struct {
	ID            int64           `json:"id"`
	ProjectID     int64           `json:"projectId"`
	UserID        int64           `json:"userId"`
	RewardID      *int64          `json:"rewardId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}
