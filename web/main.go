package main

import (
	"flag"
	"log"

	"github.com/df07/weekend-pathtracer/pkg/scene"
	"github.com/df07/weekend-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	for _, info := range scene.ListScenes() {
		log.Printf("scene %-13s %s", info.ID, info.Description)
	}
	log.Printf("preview: http://localhost:%d/api/render?scene=three-spheres&width=400&height=200", *port)

	log.Fatal(server.NewServer(*port).Start())
}
