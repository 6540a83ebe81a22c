package main

import (
	"bytes"
	"image/png"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	mandel "github.com/christiankuhl/mandelbrot-go"
)

// liveView mirrors the latest rendered frame to browsers: an index page
// plus a /ws endpoint streaming the frame as PNG-encoded binary messages.
// The render loop publishes frames under the mutex; every websocket
// connection encodes its own snapshots on its own timer, so a slow client
// never blocks the window.
type liveView struct {
	width, height int
	interval      time.Duration

	mu  sync.Mutex
	buf mandel.PixelBuffer
	gen uint64
}

func newLiveView(width, height int) *liveView {
	return &liveView{
		width:    width,
		height:   height,
		interval: 500 * time.Millisecond,
	}
}

// setFrame stores a copy of the presented buffer, skipping generations the
// mirror has already seen.
func (lv *liveView) setFrame(buf mandel.PixelBuffer, gen uint64) {
	lv.mu.Lock()
	if gen != lv.gen {
		lv.buf = append(lv.buf[:0], buf...)
		lv.gen = gen
	}
	lv.mu.Unlock()
}

// snapshot encodes the latest frame as PNG. It returns a nil frame when
// nothing changed since the caller's generation or no frame exists yet.
func (lv *liveView) snapshot(since uint64) (frame []byte, gen uint64, err error) {
	lv.mu.Lock()
	if lv.gen == since || len(lv.buf) == 0 {
		lv.mu.Unlock()
		return nil, since, nil
	}
	img := lv.buf.ToRGBA(lv.width, lv.height)
	gen = lv.gen
	lv.mu.Unlock()

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, gen, err
	}
	return out.Bytes(), gen, nil
}

// liveViewServer wires the index page and the websocket endpoint into an
// http server for the given address.
func liveViewServer(addr string, lv *liveView) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", lv.handleWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, indexHTML)
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// handleWS upgrades the connection and pushes a PNG frame whenever the
// rendered image changed, checked at the mirror interval.
func (lv *liveView) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // local viewing aid, not an exposed service
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	ticker := time.NewTicker(lv.interval)
	defer ticker.Stop()

	var gen uint64
	for {
		frame, next, err := lv.snapshot(gen)
		if err != nil {
			log.Printf("live view: encode frame: %v", err)
			return
		}
		gen = next
		if frame != nil {
			if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
				// client gone
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>mandelbrot live view</title></head>
<body style="margin:0;background:#111;display:flex;justify-content:center">
<img id="frame" alt="waiting for first frame" style="image-rendering:pixelated">
<script>
const proto = location.protocol === "https:" ? "wss" : "ws";
const ws = new WebSocket(proto + "://" + location.host + "/ws");
ws.binaryType = "blob";
const img = document.getElementById("frame");
ws.onmessage = (ev) => {
	const url = URL.createObjectURL(ev.data);
	img.onload = () => URL.revokeObjectURL(url);
	img.src = url;
};
</script>
</body>
</html>
`
