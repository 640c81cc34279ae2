// Package encoding reads and writes Story documents, the on-disk XML format
// for a project.
//
// A Story document has a single Story root element with a TimelineRoot child
// holding every timeline in the project. Decoding is lenient about content it
// does not understand: unknown children are skipped with a warning so that
// documents written by newer tools still load.
//
// Example usage:
//
//	import "github.com/cavewriter/go-sdk/pkg/encoding"
//
//	f, err := os.Open("project.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	story, err := encoding.DecodeStory(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := story.Encode(os.Stdout); err != nil {
//		log.Fatal(err)
//	}
package encoding
