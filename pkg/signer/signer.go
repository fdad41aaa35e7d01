package signer

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Params 开放平台鉴权参数，放在 query string 里
type Params struct {
	AppName   string `json:"appName"`
	Sid       string `json:"sid"`
	Sign      string `json:"sign"`
	Timestamp string `json:"timestamp"`
}

func (p Params) Query() url.Values {
	v := url.Values{}
	v.Set("appName", p.AppName)
	v.Set("sid", p.Sid)
	v.Set("sign", p.Sign)
	v.Set("timestamp", p.Timestamp)
	return v
}

type Envelope struct {
	Params  Params
	Headers map[string]string
	Body    string
}

type Signer struct {
	AppKey  string
	AppName string
	Sid     string

	now func() time.Time
}

func New(appKey, appName, sid string) *Signer {
	return &Signer{AppKey: appKey, AppName: appName, Sid: sid, now: time.Now}
}

// WithClock 替换时钟，测试用
func (s *Signer) WithClock(now func() time.Time) *Signer {
	cp := *s
	cp.now = now
	return &cp
}

// Sign 每次调用都取新的时间戳，重试的请求签名不同
func (s *Signer) Sign(body string) Envelope {
	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	return Envelope{
		Params: Params{
			AppName:   s.AppName,
			Sid:       s.Sid,
			Sign:      Digest(s.AppKey, s.AppName, s.Sid, body, timestamp),
			Timestamp: timestamp,
		},
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}
}

// Digest md5(appKey + appName{name} + body{body} + sid{sid} + timestamp{ts} + appKey)
func Digest(appKey, appName, sid, body, timestamp string) string {
	var b strings.Builder
	b.Grow(len(appKey)*2 + len(body) + 64)
	b.WriteString(appKey)
	b.WriteString("appName")
	b.WriteString(appName)
	b.WriteString("body")
	b.WriteString(body)
	b.WriteString("sid")
	b.WriteString(sid)
	b.WriteString("timestamp")
	b.WriteString(timestamp)
	b.WriteString(appKey)

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
