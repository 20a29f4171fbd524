package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/literal"
)

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

	base := literal.From("Test String")
	tail := literal.From(" and more text")
	needle := []byte("String")
	var sink uint64
	for i := 0; i < 10000; i++ {
		joined := literal.Concat(base, tail)
		if joined.FindView(needle, 0) == literal.NotFound {
			log.Fatal("lost the needle")
		}
		sink ^= joined.Hash()
	}
	log.Println("hash sink:", sink)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
