package mesh

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// Attribute slots, matching the layout(location = N) qualifiers in the shaders
const (
	PositionSlot uint32 = 0
	NormalSlot   uint32 = 1
	TexCoordSlot uint32 = 2
)

// Attribute describes one float32 vector inside an interleaved record
type Attribute struct {
	Slot       uint32
	Components int32
	Offset     uintptr
}

// Layout describes how to read records out of a single vertex buffer
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

// VertexLayout is the layout of Vertex: stride 32, offsets 0/12/24.
var VertexLayout = Layout{
	Stride: int32(unsafe.Sizeof(Vertex{})),
	Attributes: []Attribute{
		{Slot: PositionSlot, Components: 3, Offset: unsafe.Offsetof(Vertex{}.Position)},
		{Slot: NormalSlot, Components: 3, Offset: unsafe.Offsetof(Vertex{}.Normal)},
		{Slot: TexCoordSlot, Components: 2, Offset: unsafe.Offsetof(Vertex{}.TexCoord)},
	},
}

// VulkanBindings returns the Vulkan binding for a buffer laid out as l.
// Everything comes from one buffer, so there is exactly one binding.
func (l Layout) VulkanBindings() []vk.VertexInputBindingDescription {
	return []vk.VertexInputBindingDescription{{
		Binding:   0,
		Stride:    uint32(l.Stride),
		InputRate: vk.VertexInputRateVertex,
	}}
}

// VulkanAttributes returns one attribute description per slot, all bound to
// binding 0.
func (l Layout) VulkanAttributes() []vk.VertexInputAttributeDescription {
	out := make([]vk.VertexInputAttributeDescription, 0, len(l.Attributes))
	for _, a := range l.Attributes {
		out = append(out, vk.VertexInputAttributeDescription{
			Location: a.Slot,
			Binding:  0,
			Format:   vulkanFloatFormat(a.Components),
			Offset:   uint32(a.Offset),
		})
	}
	return out
}

func vulkanFloatFormat(components int32) vk.Format {
	switch components {
	case 1:
		return vk.FormatR32Sfloat
	case 2:
		return vk.FormatR32g32Sfloat
	case 3:
		return vk.FormatR32g32b32Sfloat
	default:
		return vk.FormatR32g32b32a32Sfloat
	}
}
