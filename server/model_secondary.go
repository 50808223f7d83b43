package server

import (
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_UNAVAILABLE = 503
const HTTP_TIMEOUT = 408

type ResponseCode int

const (
	VIEWER_READY ResponseCode = iota
	VIEWER_REJECTED
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case VIEWER_READY:
		return HTTP_SUCCESS
	case VIEWER_REJECTED:
		return HTTP_UNAVAILABLE
	default:
		panic(h)
	}
}

func (vs ViewerSessionState) Name() string {
	switch vs {
	case VS_NEW:
		return "NEW"
	case VS_WATCH:
		return "WATCH"
	case VS_OVER:
		return "OVER"
	case VS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", vs)
	}
}

type ViewerAwaiting struct {
	ResponseCode ResponseCode
}

type ViewerRequest struct {
	Viewer         *ViewerSession
	ViewerAwaiting chan ViewerAwaiting
}
