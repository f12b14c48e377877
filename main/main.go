package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/singular"
)

type envelope struct {
	Seq     uint64
	Note    string
	Payload []byte
}

func (e *envelope) Reset() {
	e.Seq = 0
	e.Note = ""
	e.Payload = e.Payload[:0]
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	var field singular.Field[envelope]
	for i := 0; i < 10000; i++ {
		e := singular.SetDefault(&field)
		e.Seq = uint64(i)
		e.Note = "refilled"
		for j := 0; j < 64; j++ {
			e.Payload = append(e.Payload, byte(j))
		}
		field.Clear()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
