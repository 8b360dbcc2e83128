package constants

import "time"

// 数据库保活检查间隔，断开期间按这个间隔持续重试
const DBKeepAliveInterval = 5 * time.Second
