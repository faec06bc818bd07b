package config

import "time"

// NMS API接続設定
const (
	NMSRequestTimeout = 10 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "nms-api"
	CBMaxRequests      = 1
	CBInterval         = 30 * time.Second
	CBTimeout          = 15 * time.Second
	CBFailureThreshold = 3
)

// 起動時の初期読み込みタイムアウト
const (
	InitialLoadTimeout = 15 * time.Second
)
