// Command objstat prints the contents of OBJ files without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"unsafe"

	"objview/internal/graphics/mesh"
	"objview/pkg/objmesh"

	vk "github.com/vulkan-go/vulkan"
)

func main() {
	log.SetFlags(0)
	layout := flag.Bool("layout", false, "also print the Vulkan vertex input description of the exploded stream")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: objstat [-layout] file.obj...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *layout {
		printLayout(os.Stdout, mesh.VertexLayout)
		if flag.NArg() == 0 {
			return
		}
		fmt.Println()
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if failed := run(os.Stdout, flag.Args()); failed > 0 {
		os.Exit(1)
	}
}

// run reports on every path and returns how many could not be loaded
func run(out io.Writer, paths []string) int {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPOSITIONS\tNORMALS\tTEXCOORDS\tFACES\tVERTICES\tBYTES\tBOUNDS")

	failed := 0
	for _, path := range paths {
		m, err := objmesh.Load(path)
		if err != nil {
			log.Printf("objstat: %v", err)
			failed++
			continue
		}

		// the stream must also be explodable, not just parseable
		vertices, err := mesh.Explode(m)
		if err != nil {
			log.Printf("objstat: %s: %v", path, err)
			failed++
			continue
		}

		s := m.Stats()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			path, s.Positions, s.Normals, s.TexCoords, s.Faces,
			len(vertices), len(vertices)*int(unsafe.Sizeof(mesh.Vertex{})), bounds(m))
	}

	tw.Flush()
	return failed
}

func bounds(m *objmesh.Mesh) string {
	lo, hi, ok := m.Bounds()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("(%g,%g,%g)..(%g,%g,%g)", lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

// printLayout writes the binding and attribute descriptions a Vulkan pipeline
// would be created with for buffers laid out as l.
func printLayout(out io.Writer, l mesh.Layout) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BINDING\tSTRIDE\tRATE")
	for _, b := range l.VulkanBindings() {
		rate := "vertex"
		if b.InputRate == vk.VertexInputRateInstance {
			rate = "instance"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", b.Binding, b.Stride, rate)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "LOCATION\tBINDING\tFORMAT\tOFFSET")
	for _, a := range l.VulkanAttributes() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\n", a.Location, a.Binding, formatName(a.Format), a.Offset)
	}
	tw.Flush()
}

func formatName(f vk.Format) string {
	switch f {
	case vk.FormatR32Sfloat:
		return "R32_SFLOAT"
	case vk.FormatR32g32Sfloat:
		return "R32G32_SFLOAT"
	case vk.FormatR32g32b32Sfloat:
		return "R32G32B32_SFLOAT"
	case vk.FormatR32g32b32a32Sfloat:
		return "R32G32B32A32_SFLOAT"
	default:
		return fmt.Sprintf("FORMAT(%d)", f)
	}
}
