package server

import (
	"io"
	"net/http"

	"github.com/valyala/fasthttp"
)

// Body is written, byte for byte, as the response to every request
const Body = "Hello World"

// Handler answers any net/http request with Body.
// Method, path, headers and request body are never inspected.
func Handler(rwrite http.ResponseWriter, req *http.Request) {
	io.WriteString(rwrite, Body)
}

// FastHandler is the fasthttp equivalent of Handler
func FastHandler(ctx *fasthttp.RequestCtx) {
	ctx.WriteString(Body)
}
