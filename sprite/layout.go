package sprite

import (
	"github.com/gogpu/clockface"
)

// SegmentVertex is one vertex of the 7-segment face mesh: a 2D
// model-space position plus the ID of the island the vertex belongs
// to. The island ID is flat across a triangle; the vertex stage tests
// it against the frame's Flagset to decide lit/unlit.
type SegmentVertex struct {
	Pos    clockface.Vec2
	Island uint32
}

// SegmentVertices is the display mesh of the digital face, authored in
// Blender over the LED region artwork and exported as a flat vertex
// table. Islands 0..27 are the four digit positions (seven segments
// each, matching the Flagset word-0 shifts), 32..38 the weekday row,
// 39/40 the AM/PM indicators, 41 the colon.
var SegmentVertices = [160]SegmentVertex{
	{clockface.V2(-2.095772, -0.643742), 0},
	{clockface.V2(-1.358510, -0.643742), 0},
	{clockface.V2(-1.896928, -0.453839), 0},
	{clockface.V2(-1.524128, -0.453839), 0},
	{clockface.V2(-2.118776, -0.594050), 1},
	{clockface.V2(-1.932165, -0.421071), 1},
	{clockface.V2(-2.075348, 0.031189), 1},
	{clockface.V2(-1.906402, -0.154733), 1},
	{clockface.V2(-1.497850, -0.414179), 2},
	{clockface.V2(-1.310600, -0.640586), 2},
	{clockface.V2(-1.474955, -0.145988), 2},
	{clockface.V2(-1.254634, 0.029795), 2},
	{clockface.V2(-1.898295, -0.086802), 3},
	{clockface.V2(-1.457680, -0.086802), 3},
	{clockface.V2(-1.885434, 0.092690), 3},
	{clockface.V2(-1.443306, 0.092690), 3},
	{clockface.V2(-1.984385, 0.002944), 3},
	{clockface.V2(-1.362022, 0.002944), 3},
	{clockface.V2(-1.819779, 0.456748), 4},
	{clockface.V2(-1.436929, 0.456748), 4},
	{clockface.V2(-1.984956, 0.642849), 4},
	{clockface.V2(-1.246313, 0.642849), 4},
	{clockface.V2(-2.067446, 0.002886), 5},
	{clockface.V2(-1.878717, 0.160996), 5},
	{clockface.V2(-2.019454, 0.606703), 5},
	{clockface.V2(-1.851334, 0.426510), 5},
	{clockface.V2(-1.445700, 0.160552), 6},
	{clockface.V2(-1.270013, -0.009925), 6},
	{clockface.V2(-1.416551, 0.429421), 6},
	{clockface.V2(-1.212740, 0.639647), 6},
	{clockface.V2(-1.077749, -0.643742), 7},
	{clockface.V2(-0.340487, -0.643742), 7},
	{clockface.V2(-0.878905, -0.453839), 7},
	{clockface.V2(-0.506105, -0.453839), 7},
	{clockface.V2(-1.100754, -0.594050), 8},
	{clockface.V2(-0.914142, -0.421071), 8},
	{clockface.V2(-1.057325, 0.031189), 8},
	{clockface.V2(-0.888379, -0.154733), 8},
	{clockface.V2(-0.479828, -0.414179), 9},
	{clockface.V2(-0.292578, -0.640586), 9},
	{clockface.V2(-0.456933, -0.145988), 9},
	{clockface.V2(-0.236612, 0.029795), 9},
	{clockface.V2(-0.880272, -0.086802), 10},
	{clockface.V2(-0.439658, -0.086802), 10},
	{clockface.V2(-0.867411, 0.092690), 10},
	{clockface.V2(-0.425284, 0.092690), 10},
	{clockface.V2(-0.966362, 0.002944), 10},
	{clockface.V2(-0.343999, 0.002944), 10},
	{clockface.V2(-0.801757, 0.456748), 11},
	{clockface.V2(-0.418906, 0.456748), 11},
	{clockface.V2(-0.966933, 0.642849), 11},
	{clockface.V2(-0.228290, 0.642849), 11},
	{clockface.V2(-1.049423, 0.002886), 12},
	{clockface.V2(-0.860694, 0.160996), 12},
	{clockface.V2(-1.001431, 0.606703), 12},
	{clockface.V2(-0.833312, 0.426510), 12},
	{clockface.V2(-0.427677, 0.160552), 13},
	{clockface.V2(-0.251990, -0.009925), 13},
	{clockface.V2(-0.398528, 0.429421), 13},
	{clockface.V2(-0.194717, 0.639647), 13},
	{clockface.V2(0.195464, -0.643742), 14},
	{clockface.V2(0.932727, -0.643742), 14},
	{clockface.V2(0.394308, -0.453839), 14},
	{clockface.V2(0.767108, -0.453839), 14},
	{clockface.V2(0.172460, -0.594050), 15},
	{clockface.V2(0.359071, -0.421071), 15},
	{clockface.V2(0.215888, 0.031189), 15},
	{clockface.V2(0.384834, -0.154733), 15},
	{clockface.V2(0.793386, -0.414179), 16},
	{clockface.V2(0.980636, -0.640586), 16},
	{clockface.V2(0.816281, -0.145988), 16},
	{clockface.V2(1.036602, 0.029795), 16},
	{clockface.V2(0.392941, -0.086802), 17},
	{clockface.V2(0.833556, -0.086802), 17},
	{clockface.V2(0.405802, 0.092690), 17},
	{clockface.V2(0.847930, 0.092690), 17},
	{clockface.V2(0.306852, 0.002944), 17},
	{clockface.V2(0.929214, 0.002944), 17},
	{clockface.V2(0.471457, 0.456748), 18},
	{clockface.V2(0.854307, 0.456748), 18},
	{clockface.V2(0.306280, 0.642849), 18},
	{clockface.V2(1.044923, 0.642849), 18},
	{clockface.V2(0.223790, 0.002886), 19},
	{clockface.V2(0.412519, 0.160996), 19},
	{clockface.V2(0.271783, 0.606703), 19},
	{clockface.V2(0.439902, 0.426510), 19},
	{clockface.V2(0.845536, 0.160552), 20},
	{clockface.V2(1.021223, -0.009925), 20},
	{clockface.V2(0.874685, 0.429421), 20},
	{clockface.V2(1.078496, 0.639647), 20},
	{clockface.V2(1.213487, -0.643742), 21},
	{clockface.V2(1.950749, -0.643742), 21},
	{clockface.V2(1.412331, -0.453839), 21},
	{clockface.V2(1.785131, -0.453839), 21},
	{clockface.V2(1.190482, -0.594050), 22},
	{clockface.V2(1.377094, -0.421071), 22},
	{clockface.V2(1.233911, 0.031189), 22},
	{clockface.V2(1.402857, -0.154733), 22},
	{clockface.V2(1.811408, -0.414179), 23},
	{clockface.V2(1.998658, -0.640586), 23},
	{clockface.V2(1.834303, -0.145988), 23},
	{clockface.V2(2.054624, 0.029795), 23},
	{clockface.V2(1.410964, -0.086802), 24},
	{clockface.V2(1.851578, -0.086802), 24},
	{clockface.V2(1.423825, 0.092690), 24},
	{clockface.V2(1.865952, 0.092690), 24},
	{clockface.V2(1.324874, 0.002944), 24},
	{clockface.V2(1.947237, 0.002944), 24},
	{clockface.V2(1.489480, 0.456748), 25},
	{clockface.V2(1.872330, 0.456748), 25},
	{clockface.V2(1.324303, 0.642849), 25},
	{clockface.V2(2.062946, 0.642849), 25},
	{clockface.V2(1.241813, 0.002886), 26},
	{clockface.V2(1.430542, 0.160996), 26},
	{clockface.V2(1.289805, 0.606703), 26},
	{clockface.V2(1.457924, 0.426510), 26},
	{clockface.V2(1.863559, 0.160552), 27},
	{clockface.V2(2.039246, -0.009925), 27},
	{clockface.V2(1.892708, 0.429421), 27},
	{clockface.V2(2.096519, 0.639647), 27},
	{clockface.V2(-2.319725, 0.893913), 32},
	{clockface.V2(-1.767762, 0.893913), 32},
	{clockface.V2(-2.319725, 1.204886), 32},
	{clockface.V2(-1.767762, 1.204886), 32},
	{clockface.V2(-1.634569, 0.893913), 33},
	{clockface.V2(-1.082606, 0.893913), 33},
	{clockface.V2(-1.634569, 1.204886), 33},
	{clockface.V2(-1.082606, 1.204886), 33},
	{clockface.V2(-0.942275, 0.893913), 34},
	{clockface.V2(-0.390313, 0.893913), 34},
	{clockface.V2(-0.942275, 1.204886), 34},
	{clockface.V2(-0.390313, 1.204886), 34},
	{clockface.V2(-0.257119, 0.893913), 35},
	{clockface.V2(0.294844, 0.893913), 35},
	{clockface.V2(-0.257119, 1.204886), 35},
	{clockface.V2(0.294844, 1.204886), 35},
	{clockface.V2(0.431606, 0.893913), 36},
	{clockface.V2(0.983569, 0.893913), 36},
	{clockface.V2(0.431606, 1.204886), 36},
	{clockface.V2(0.983569, 1.204886), 36},
	{clockface.V2(1.116762, 0.893913), 37},
	{clockface.V2(1.668725, 0.893913), 37},
	{clockface.V2(1.116762, 1.204886), 37},
	{clockface.V2(1.668725, 1.204886), 37},
	{clockface.V2(1.809056, 0.893913), 38},
	{clockface.V2(2.361018, 0.893913), 38},
	{clockface.V2(1.809056, 1.204886), 38},
	{clockface.V2(2.361018, 1.204886), 38},
	{clockface.V2(-0.632139, -1.180878), 39},
	{clockface.V2(-0.245536, -1.180878), 39},
	{clockface.V2(-0.632139, -0.905955), 39},
	{clockface.V2(-0.245536, -0.905955), 39},
	{clockface.V2(0.231189, -1.180878), 40},
	{clockface.V2(0.617792, -1.180878), 40},
	{clockface.V2(0.231189, -0.905955), 40},
	{clockface.V2(0.617792, -0.905955), 40},
	{clockface.V2(-0.187720, -0.403361), 41},
	{clockface.V2(0.091462, -0.431448), 41},
	{clockface.V2(-0.106829, 0.400715), 41},
	{clockface.V2(0.172354, 0.372628), 41},
}

// SegmentIndices triangulates SegmentVertices. Each triangle stays
// within one island.
var SegmentIndices = [252]uint16{
	1, 2, 0, 1, 3, 2,
	5, 6, 4, 5, 7, 6,
	8, 11, 10, 8, 9, 11,
	17, 14, 16, 13, 16, 12,
	17, 15, 14, 13, 17, 16,
	19, 20, 18, 19, 21, 20,
	23, 24, 22, 23, 25, 24,
	27, 28, 26, 27, 29, 28,
	31, 32, 30, 31, 33, 32,
	35, 36, 34, 35, 37, 36,
	38, 41, 40, 38, 39, 41,
	47, 44, 46, 43, 46, 42,
	47, 45, 44, 43, 47, 46,
	49, 50, 48, 49, 51, 50,
	53, 54, 52, 53, 55, 54,
	57, 58, 56, 57, 59, 58,
	61, 62, 60, 61, 63, 62,
	65, 66, 64, 65, 67, 66,
	68, 71, 70, 68, 69, 71,
	77, 74, 76, 73, 76, 72,
	77, 75, 74, 73, 77, 76,
	79, 80, 78, 79, 81, 80,
	83, 84, 82, 83, 85, 84,
	87, 88, 86, 87, 89, 88,
	91, 92, 90, 91, 93, 92,
	95, 96, 94, 95, 97, 96,
	98, 101, 100, 98, 99, 101,
	107, 104, 106, 103, 106, 102,
	107, 105, 104, 103, 107, 106,
	109, 110, 108, 109, 111, 110,
	113, 114, 112, 113, 115, 114,
	117, 118, 116, 117, 119, 118,
	121, 122, 120, 121, 123, 122,
	125, 126, 124, 125, 127, 126,
	129, 130, 128, 129, 131, 130,
	133, 134, 132, 133, 135, 134,
	137, 138, 136, 137, 139, 138,
	141, 142, 140, 141, 143, 142,
	145, 146, 144, 145, 147, 146,
	149, 150, 148, 149, 151, 150,
	153, 154, 152, 153, 155, 154,
	157, 158, 156, 157, 159, 158,
}
