package network

import "github.com/bft-labs/gridsim/internal/domain"

// IEEE 300-bus element counts.
const (
	ieee300Buses        = 300
	ieee300Lines        = 304
	ieee300Transformers = 107
	ieee300Generators   = 69
	ieee300Loads        = 201
	ieee300Shunts       = 29
	ieee300SlackBus     = 7049
)

// ieee300 is the IEEE 300-bus test case, in the bus numbering of the
// published case.
var ieee300 = caseSpec{
	id:      "ieee300cdf",
	name:    "IEEE 300 bus",
	baseMVA: domain.DefaultBaseMVA,
	slack:   ieee300SlackBus,
	buses: []busSpec{
		{num: 1, nominalV: 115, pd: 90, qd: 49},
		{num: 2, nominalV: 115, pd: 56, qd: 15},
		{num: 3, nominalV: 115, pd: 20, qd: 0},
		{num: 4, nominalV: 345},
		{num: 5, nominalV: 115, pd: 353, qd: 130},
		{num: 7, nominalV: 115},
		{num: 8, nominalV: 115, pd: 63, qd: 14},
		{num: 9, nominalV: 115, pd: 96, qd: 43},
		{num: 10, nominalV: 230, pd: 153, qd: 33},
		{num: 11, nominalV: 115, pd: 83, qd: 21},
		{num: 12, nominalV: 115},
		{num: 13, nominalV: 115, pd: 58, qd: 10, bs: 30},
		{num: 14, nominalV: 115, pd: 160, qd: 60},
		{num: 15, nominalV: 115, pd: 126.7, qd: 23},
		{num: 16, nominalV: 345},
		{num: 17, nominalV: 66, pd: 561, qd: 220},
		{num: 19, nominalV: 115},
		{num: 20, nominalV: 115, pd: 605, qd: 120},
		{num: 21, nominalV: 115, pd: 77, qd: 1},
		{num: 22, nominalV: 115, pd: 81, qd: 23, bs: 25},
		{num: 23, nominalV: 115, pd: 21, qd: 7},
		{num: 24, nominalV: 115},
		{num: 25, nominalV: 115, pd: 45, qd: 12},
		{num: 26, nominalV: 115, pd: 28, qd: 9},
		{num: 27, nominalV: 115, pd: 69, qd: 13, bs: 30},
		{num: 33, nominalV: 115, pd: 55, qd: 6},
		{num: 34, nominalV: 345},
		{num: 35, nominalV: 115},
		{num: 36, nominalV: 230},
		{num: 37, nominalV: 115, pd: 85, qd: 32},
		{num: 38, nominalV: 115, pd: 155, qd: 18},
		{num: 39, nominalV: 345},
		{num: 40, nominalV: 115, pd: 46, qd: -21},
		{num: 41, nominalV: 115, pd: 86, qd: 0},
		{num: 42, nominalV: 345, bs: -150},
		{num: 43, nominalV: 115, pd: 39, qd: 9, bs: 20},
		{num: 44, nominalV: 115, pd: 195, qd: 29},
		{num: 45, nominalV: 230, bs: -4.2},
		{num: 46, nominalV: 345, bs: -150},
		{num: 47, nominalV: 115, pd: 58, qd: 11.8, bs: 45},
		{num: 48, nominalV: 115, pd: 41, qd: 19},
		{num: 49, nominalV: 115, pd: 92, qd: 26},
		{num: 51, nominalV: 115, pd: -5, qd: 5},
		{num: 52, nominalV: 115, pd: 61, qd: 28},
		{num: 53, nominalV: 115, pd: 69, qd: 3, bs: 30},
		{num: 54, nominalV: 115, pd: 10, qd: 1},
		{num: 55, nominalV: 115, pd: 22, qd: 10},
		{num: 57, nominalV: 115, pd: 98, qd: 20},
		{num: 58, nominalV: 115, pd: 14, qd: 1},
		{num: 59, nominalV: 115, pd: 218, qd: 106, bs: 45},
		{num: 60, nominalV: 230},
		{num: 61, nominalV: 115, pd: 227, qd: 110},
		{num: 62, nominalV: 230},
		{num: 63, nominalV: 115, pd: 70, qd: 30},
		{num: 64, nominalV: 230},
		{num: 69, nominalV: 115},
		{num: 70, nominalV: 115, pd: 56, qd: 20},
		{num: 71, nominalV: 115, pd: 116, qd: 38, bs: 45},
		{num: 72, nominalV: 115, pd: 57, qd: 19},
		{num: 73, nominalV: 115, pd: 224, qd: 71, bs: 45},
		{num: 74, nominalV: 230},
		{num: 76, nominalV: 115, pd: 208, qd: 107, bs: 55},
		{num: 77, nominalV: 115, pd: 74, qd: 28},
		{num: 78, nominalV: 115},
		{num: 79, nominalV: 115, pd: 48, qd: 14},
		{num: 80, nominalV: 115, pd: 28, qd: 7},
		{num: 81, nominalV: 345},
		{num: 84, nominalV: 115, pd: 37, qd: 13},
		{num: 85, nominalV: 115},
		{num: 86, nominalV: 115},
		{num: 87, nominalV: 115},
		{num: 88, nominalV: 230, bs: -100},
		{num: 89, nominalV: 115, pd: 44.2, qd: 0},
		{num: 90, nominalV: 115, pd: 66, qd: 0},
		{num: 91, nominalV: 115, pd: 17.4, qd: 0},
		{num: 92, nominalV: 115, pd: 15.8, qd: 0},
		{num: 94, nominalV: 115, pd: 39.9, qd: 0},
		{num: 97, nominalV: 115, pd: 20, qd: 6},
		{num: 98, nominalV: 115, pd: 77.8, qd: 0},
		{num: 99, nominalV: 115, pd: 32, qd: 0},
		{num: 100, nominalV: 115, pd: 8.6, qd: 0},
		{num: 101, nominalV: 115, pd: 49.6, qd: 0},
		{num: 102, nominalV: 115, pd: 4.6, qd: 0},
		{num: 103, nominalV: 115, pd: 112.1, qd: 0},
		{num: 104, nominalV: 115, pd: 30.7, qd: 0},
		{num: 105, nominalV: 115, pd: 63, qd: 0},
		{num: 107, nominalV: 115, pd: 26.2, qd: 0},
		{num: 108, nominalV: 115, pd: 18.2, qd: 0},
		{num: 109, nominalV: 115, pd: 14, qd: 4},
		{num: 110, nominalV: 115},
		{num: 112, nominalV: 115},
		{num: 113, nominalV: 115, pd: 25, qd: 8},
		{num: 114, nominalV: 115},
		{num: 115, nominalV: 230},
		{num: 116, nominalV: 345},
		{num: 117, nominalV: 345, bs: 325},
		{num: 118, nominalV: 345, pd: 14.1, qd: 650},
		{num: 119, nominalV: 345},
		{num: 120, nominalV: 345, pd: 777, qd: 215, bs: 55},
		{num: 121, nominalV: 345, pd: 535, qd: 55},
		{num: 122, nominalV: 230, pd: 229.1, qd: 11.8},
		{num: 123, nominalV: 230, pd: 78, qd: 1.4},
		{num: 124, nominalV: 230, pd: 276.4, qd: 59.3},
		{num: 125, nominalV: 230, pd: 514.8, qd: 82.7},
		{num: 126, nominalV: 230, pd: 57.9, qd: 5.1},
		{num: 127, nominalV: 230, pd: 380.8, qd: 37},
		{num: 128, nominalV: 230, pd: 30, qd: 10},
		{num: 129, nominalV: 230},
		{num: 130, nominalV: 230},
		{num: 131, nominalV: 115},
		{num: 132, nominalV: 230},
		{num: 133, nominalV: 230},
		{num: 134, nominalV: 230},
		{num: 135, nominalV: 230, pd: 169.2, qd: 41.6},
		{num: 136, nominalV: 230, pd: 55.2, qd: 18.2},
		{num: 137, nominalV: 230, pd: 273.6, qd: 99.8},
		{num: 138, nominalV: 230, pd: 1019.2, qd: 135.2},
		{num: 139, nominalV: 138, pd: 595, qd: 83.3},
		{num: 140, nominalV: 230, pd: 387.7, qd: 114.7},
		{num: 141, nominalV: 230, pd: 145, qd: 58},
		{num: 142, nominalV: 230, pd: 56.5, qd: 24.5},
		{num: 143, nominalV: 230, pd: 89.5, qd: 35.5},
		{num: 144, nominalV: 230},
		{num: 145, nominalV: 230, pd: 24, qd: 14},
		{num: 146, nominalV: 230},
		{num: 147, nominalV: 230},
		{num: 148, nominalV: 138, pd: 63, qd: 25},
		{num: 149, nominalV: 230},
		{num: 150, nominalV: 115, pd: 12, qd: 4},
		{num: 151, nominalV: 230},
		{num: 152, nominalV: 230, pd: 17, qd: 9},
		{num: 153, nominalV: 230},
		{num: 154, nominalV: 138, pd: 70, qd: 5, bs: 34.5},
		{num: 155, nominalV: 230, pd: 200, qd: 50},
		{num: 156, nominalV: 138, pd: 75, qd: 50},
		{num: 157, nominalV: 230, pd: 123.5, qd: -24.3},
		{num: 158, nominalV: 230},
		{num: 159, nominalV: 230, pd: 33, qd: 16.5},
		{num: 160, nominalV: 230},
		{num: 161, nominalV: 230, pd: 35, qd: 15},
		{num: 162, nominalV: 138, pd: 85, qd: 24},
		{num: 163, nominalV: 138},
		{num: 164, nominalV: 138, bs: -212},
		{num: 165, nominalV: 138, bs: -103},
		{num: 166, nominalV: 138},
		{num: 167, nominalV: 230, pd: 299.9, qd: 95.7},
		{num: 168, nominalV: 230},
		{num: 169, nominalV: 230},
		{num: 170, nominalV: 20, pd: 481.8, qd: 205},
		{num: 171, nominalV: 230, pd: 763.6, qd: 291.1},
		{num: 172, nominalV: 138, pd: 26.5, qd: 0},
		{num: 173, nominalV: 138, pd: 163.5, qd: 43, bs: 53},
		{num: 174, nominalV: 138},
		{num: 175, nominalV: 138, pd: 176, qd: 83},
		{num: 176, nominalV: 138, pd: 5, qd: 4},
		{num: 177, nominalV: 138, pd: 28, qd: 12},
		{num: 178, nominalV: 138, pd: 427.4, qd: 173.6},
		{num: 179, nominalV: 138, pd: 74, qd: 29, bs: 45},
		{num: 180, nominalV: 138, pd: 69.5, qd: 49.3},
		{num: 181, nominalV: 230, pd: 73.4, qd: 0},
		{num: 182, nominalV: 230, pd: 240.7, qd: 89},
		{num: 183, nominalV: 138, pd: 40, qd: 4},
		{num: 184, nominalV: 230, pd: 136.8, qd: 16.6},
		{num: 185, nominalV: 230},
		{num: 186, nominalV: 230, pd: 59.8, qd: 24.3},
		{num: 187, nominalV: 230, pd: 59.8, qd: 24.3},
		{num: 188, nominalV: 230, pd: 182.6, qd: 43.6},
		{num: 189, nominalV: 66, pd: 7, qd: 2},
		{num: 190, nominalV: 115},
		{num: 191, nominalV: 115, pd: 489, qd: 53},
		{num: 192, nominalV: 115, pd: 800, qd: 72, bs: 60},
		{num: 193, nominalV: 66},
		{num: 194, nominalV: 115},
		{num: 195, nominalV: 115},
		{num: 196, nominalV: 115, pd: 10, qd: 3},
		{num: 197, nominalV: 115, pd: 43, qd: 14},
		{num: 198, nominalV: 115, pd: 64, qd: 21},
		{num: 199, nominalV: 115, pd: 35, qd: 12},
		{num: 200, nominalV: 115, pd: 27, qd: 12},
		{num: 201, nominalV: 66, pd: 41, qd: 14},
		{num: 202, nominalV: 115, pd: 38, qd: 13},
		{num: 203, nominalV: 115, pd: 42, qd: 14},
		{num: 204, nominalV: 66, pd: 72, qd: 24},
		{num: 205, nominalV: 66, pd: 0, qd: -5},
		{num: 206, nominalV: 66, pd: 12, qd: 2},
		{num: 207, nominalV: 66, pd: -21, qd: -14.2},
		{num: 208, nominalV: 66, pd: 7, qd: 2},
		{num: 209, nominalV: 66, pd: 38, qd: 13},
		{num: 210, nominalV: 115},
		{num: 211, nominalV: 115, pd: 96, qd: 7},
		{num: 212, nominalV: 115, pd: 18, qd: 6},
		{num: 213, nominalV: 115},
		{num: 214, nominalV: 115, pd: 22, qd: 16},
		{num: 215, nominalV: 115, pd: 47, qd: 26},
		{num: 216, nominalV: 115, pd: 176, qd: 105},
		{num: 217, nominalV: 115, pd: 100, qd: 75},
		{num: 218, nominalV: 115, pd: 131, qd: 96},
		{num: 219, nominalV: 115},
		{num: 220, nominalV: 115, pd: 285, qd: 100},
		{num: 221, nominalV: 115, pd: 171, qd: 70},
		{num: 222, nominalV: 115, pd: 328, qd: 188},
		{num: 223, nominalV: 115, pd: 428, qd: 232},
		{num: 224, nominalV: 115, pd: 173, qd: 99},
		{num: 225, nominalV: 115, pd: 410, qd: 40, bs: 60},
		{num: 226, nominalV: 115},
		{num: 227, nominalV: 115, pd: 538, qd: 369},
		{num: 228, nominalV: 115, pd: 223, qd: 148},
		{num: 229, nominalV: 115, pd: 96, qd: 46},
		{num: 230, nominalV: 20},
		{num: 231, nominalV: 115, pd: 159, qd: 107, bs: -300},
		{num: 232, nominalV: 115, pd: 448, qd: 143},
		{num: 233, nominalV: 115, pd: 404, qd: 212},
		{num: 234, nominalV: 115, pd: 572, qd: 244, bs: 80},
		{num: 235, nominalV: 115, pd: 269, qd: 157},
		{num: 236, nominalV: 20},
		{num: 237, nominalV: 115},
		{num: 238, nominalV: 115, pd: 255, qd: 149},
		{num: 239, nominalV: 20},
		{num: 240, nominalV: 115, bs: -150},
		{num: 241, nominalV: 115},
		{num: 242, nominalV: 115},
		{num: 243, nominalV: 115, pd: 8, qd: 3},
		{num: 244, nominalV: 115},
		{num: 245, nominalV: 115, pd: 61, qd: 30},
		{num: 246, nominalV: 115, pd: 77, qd: 33},
		{num: 247, nominalV: 115, pd: 61, qd: 30},
		{num: 248, nominalV: 115, pd: 29, qd: 14, bs: 45},
		{num: 249, nominalV: 115, pd: 29, qd: 14},
		{num: 250, nominalV: 115, pd: -23, qd: -17},
		{num: 281, nominalV: 115, pd: -33.1, qd: -29.4},
		{num: 319, nominalV: 115, pd: 115.8, qd: -24},
		{num: 320, nominalV: 115, pd: 2.4, qd: -12.6},
		{num: 322, nominalV: 115, pd: 2.4, qd: -3.9},
		{num: 323, nominalV: 115, pd: -14.9, qd: 26.5},
		{num: 324, nominalV: 115, pd: 24.7, qd: -1.2},
		{num: 526, nominalV: 115, pd: 145.3, qd: -34.9},
		{num: 528, nominalV: 115, pd: 28.1, qd: -20.5},
		{num: 531, nominalV: 115, pd: 14, qd: 2.5},
		{num: 552, nominalV: 115, pd: -11.1, qd: -1.4},
		{num: 562, nominalV: 230, pd: 50.5, qd: 17.4},
		{num: 609, nominalV: 115, pd: 29.6, qd: 0.6},
		{num: 664, nominalV: 115, pd: -113.7, qd: 76.7},
		{num: 1190, nominalV: 66, pd: 100.31, qd: 29.17},
		{num: 1200, nominalV: 66, pd: -100, qd: 34.17},
		{num: 1201, nominalV: 345},
		{num: 2040, nominalV: 66},
		{num: 7001, nominalV: 13.8},
		{num: 7002, nominalV: 13.8},
		{num: 7003, nominalV: 13.8},
		{num: 7011, nominalV: 13.8},
		{num: 7012, nominalV: 13.8},
		{num: 7017, nominalV: 13.8},
		{num: 7023, nominalV: 13.8},
		{num: 7024, nominalV: 13.8},
		{num: 7039, nominalV: 13.8},
		{num: 7044, nominalV: 13.8},
		{num: 7049, nominalV: 13.8},
		{num: 7055, nominalV: 13.8},
		{num: 7057, nominalV: 13.8},
		{num: 7061, nominalV: 13.8},
		{num: 7062, nominalV: 13.8},
		{num: 7071, nominalV: 13.8},
		{num: 7130, nominalV: 13.8},
		{num: 7139, nominalV: 13.8},
		{num: 7166, nominalV: 13.8},
		{num: 9001, nominalV: 115},
		{num: 9002, nominalV: 6.6, pd: 4.2, qd: 0},
		{num: 9003, nominalV: 2.3, pd: 2.71, qd: 0.94},
		{num: 9004, nominalV: 2.3, pd: 0.86, qd: 0.28},
		{num: 9005, nominalV: 115},
		{num: 9006, nominalV: 6.6},
		{num: 9007, nominalV: 6.6},
		{num: 9012, nominalV: 6.6},
		{num: 9021, nominalV: 2.3, pd: 4.75, qd: 1.56, bs: 2},
		{num: 9022, nominalV: 0.6, pd: 1.53, qd: 0.53},
		{num: 9023, nominalV: 6.6},
		{num: 9024, nominalV: 2.3, pd: 1.35, qd: 0.47},
		{num: 9025, nominalV: 0.6, pd: 0.45, qd: 0.16},
		{num: 9026, nominalV: 0.6, pd: 0.45, qd: 0.16},
		{num: 9031, nominalV: 2.3, pd: 1.84, qd: 0.64},
		{num: 9032, nominalV: 2.3, pd: 1.39, qd: 0.48},
		{num: 9033, nominalV: 2.3, pd: 1.89, qd: 0.65},
		{num: 9034, nominalV: 2.3, pd: 1.55, qd: 0.54, bs: 2.3},
		{num: 9035, nominalV: 2.3, pd: 1.66, qd: 0.58},
		{num: 9036, nominalV: 2.3, pd: 3.03, qd: 1},
		{num: 9037, nominalV: 2.3, pd: 1.86, qd: 0.64},
		{num: 9038, nominalV: 2.3, pd: 2.58, qd: 0.89},
		{num: 9041, nominalV: 0.6, pd: 1.01, qd: 0.35},
		{num: 9042, nominalV: 0.6, pd: 0.81, qd: 0.28},
		{num: 9043, nominalV: 0.6, pd: 1.6, qd: 0.52},
		{num: 9044, nominalV: 6.6},
		{num: 9051, nominalV: 13.8, pd: 35.81, qd: 0},
		{num: 9052, nominalV: 13.8, pd: 30, qd: 23},
		{num: 9053, nominalV: 13.8, pd: 26.48, qd: 0},
		{num: 9054, nominalV: 13.8},
		{num: 9055, nominalV: 13.8},
		{num: 9071, nominalV: 0.6, pd: 1.02, qd: 0.35},
		{num: 9072, nominalV: 0.6, pd: 1.02, qd: 0.35},
		{num: 9121, nominalV: 2.3, pd: 3.8, qd: 1.25},
		{num: 9533, nominalV: 2.3, pd: 1.19, qd: 0.41},
	},
	branches: []branchSpec{
		{from: 37, to: 9001, x: 0.00046, ratio: 1.0082},
		{from: 9001, to: 9005, r: 0.00062, x: 0.00236, b: 0.00116},
		{from: 9001, to: 9006, x: 0.0365, ratio: 1},
		{from: 9001, to: 9012, x: 0.0365, ratio: 1},
		{from: 9005, to: 9051, x: 0.0775, ratio: 1},
		{from: 9005, to: 9052, x: 0.0334, ratio: 1},
		{from: 9005, to: 9053, x: 0.0478, ratio: 1},
		{from: 9005, to: 9054, x: 0.0718, ratio: 1},
		{from: 9005, to: 9055, x: 0.0931, ratio: 1},
		{from: 9006, to: 9007, r: 0.00267, x: 0.01012, b: 0.00044},
		{from: 9006, to: 9003, r: 0.00058, x: 0.00368, ratio: 1},
		{from: 9006, to: 9003, r: 0.00058, x: 0.00368, ratio: 1},
		{from: 9012, to: 9002, x: 0.0598, ratio: 1},
		{from: 9012, to: 9002, x: 0.0598, ratio: 1},
		{from: 9002, to: 9021, x: 0.1034, ratio: 1},
		{from: 9021, to: 9023, r: 0.06818, x: 0.09472, ratio: 1},
		{from: 9021, to: 9022, x: 0.1565, ratio: 1},
		{from: 9002, to: 9024, x: 0.1256, ratio: 1},
		{from: 9023, to: 9025, x: 0.1667, ratio: 1},
		{from: 9023, to: 9026, x: 0.1667, ratio: 1},
		{from: 9007, to: 9071, x: 0.1465, ratio: 1},
		{from: 9007, to: 9072, x: 0.1465, ratio: 1},
		{from: 9007, to: 9003, x: 0.07, ratio: 1},
		{from: 9003, to: 9031, r: 0.0071, x: 0.0187},
		{from: 9003, to: 9032, r: 0.0108, x: 0.0228},
		{from: 9003, to: 9033, r: 0.0053, x: 0.0168},
		{from: 9003, to: 9044, x: 0.08, ratio: 1},
		{from: 9044, to: 9004, x: 0.0878, ratio: 1},
		{from: 9004, to: 9041, x: 0.1125, ratio: 1},
		{from: 9004, to: 9042, x: 0.2285, ratio: 1},
		{from: 9004, to: 9043, x: 0.1347, ratio: 1},
		{from: 9003, to: 9034, r: 0.0024, x: 0.0043},
		{from: 9003, to: 9035, r: 0.0112, x: 0.0241},
		{from: 9003, to: 9036, r: 0.0027, x: 0.0065},
		{from: 9003, to: 9037, r: 0.0045, x: 0.0098},
		{from: 9003, to: 9038, r: 0.0033, x: 0.0121},
		{from: 9012, to: 9121, x: 0.1218, ratio: 1},
		{from: 9053, to: 9533, x: 0.1362, ratio: 1},
		{from: 1, to: 5, r: 0.001, x: 0.006},
		{from: 2, to: 8, r: 0.006, x: 0.027, b: 0.054},
		{from: 3, to: 7, x: 0.003},
		{from: 3, to: 19, r: 0.008, x: 0.069, b: 0.139},
		{from: 3, to: 150, r: 0.001, x: 0.007},
		{from: 4, to: 16, r: 0.002, x: 0.019, b: 1.127},
		{from: 5, to: 9, r: 0.006, x: 0.029, b: 0.018},
		{from: 7, to: 12, r: 0.001, x: 0.009, b: 0.07},
		{from: 7, to: 131, r: 0.001, x: 0.007, b: 0.014},
		{from: 8, to: 11, r: 0.013, x: 0.0595, b: 0.033},
		{from: 8, to: 14, r: 0.013, x: 0.042, b: 0.081},
		{from: 9, to: 11, r: 0.006, x: 0.027, b: 0.013},
		{from: 11, to: 13, r: 0.008, x: 0.034, b: 0.018},
		{from: 12, to: 21, r: 0.002, x: 0.015, b: 0.118},
		{from: 13, to: 20, r: 0.006, x: 0.034, b: 0.016},
		{from: 14, to: 15, r: 0.014, x: 0.042, b: 0.097},
		{from: 15, to: 37, r: 0.065, x: 0.248, b: 0.121},
		{from: 15, to: 89, r: 0.099, x: 0.248, b: 0.035},
		{from: 15, to: 90, r: 0.096, x: 0.363, b: 0.048},
		{from: 16, to: 42, r: 0.002, x: 0.022, b: 1.28},
		{from: 19, to: 21, r: 0.002, x: 0.018, b: 0.036},
		{from: 19, to: 87, r: 0.013, x: 0.08, b: 0.151},
		{from: 20, to: 22, r: 0.016, x: 0.033, b: 0.015},
		{from: 20, to: 27, r: 0.069, x: 0.186, b: 0.098},
		{from: 21, to: 24, r: 0.004, x: 0.034, b: 0.28},
		{from: 22, to: 23, r: 0.052, x: 0.111, b: 0.05},
		{from: 23, to: 25, r: 0.019, x: 0.039, b: 0.018},
		{from: 24, to: 319, r: 0.007, x: 0.068, b: 0.134},
		{from: 25, to: 26, r: 0.036, x: 0.071, b: 0.034},
		{from: 26, to: 27, r: 0.045, x: 0.12, b: 0.065},
		{from: 26, to: 320, r: 0.043, x: 0.13, b: 0.014},
		{from: 33, to: 34, x: 0.063, ratio: 1},
		{from: 33, to: 38, r: 0.0025, x: 0.012, b: 0.013},
		{from: 33, to: 40, r: 0.006, x: 0.029, b: 0.02},
		{from: 33, to: 41, r: 0.007, x: 0.043, b: 0.026},
		{from: 34, to: 42, r: 0.001, x: 0.008, b: 0.042},
		{from: 35, to: 72, r: 0.012, x: 0.06, b: 0.008},
		{from: 35, to: 76, r: 0.006, x: 0.014, b: 0.002},
		{from: 35, to: 77, r: 0.01, x: 0.029, b: 0.003},
		{from: 36, to: 88, r: 0.004, x: 0.047, b: 0.066},
		{from: 37, to: 38, r: 0.008, x: 0.047, b: 0.03},
		{from: 37, to: 40, r: 0.022, x: 0.064, b: 0.007},
		{from: 37, to: 41, r: 0.01, x: 0.036, b: 0.02},
		{from: 37, to: 49, r: 0.017, x: 0.081, b: 0.048},
		{from: 37, to: 89, r: 0.102, x: 0.254, b: 0.033},
		{from: 38, to: 41, r: 0.008, x: 0.037, b: 0.02},
		{from: 38, to: 43, r: 0.032, x: 0.087, b: 0.04},
		{from: 39, to: 42, r: 0.0006, x: 0.0064, b: 0.404},
		{from: 40, to: 48, r: 0.026, x: 0.154, b: 0.022},
		{from: 41, to: 42, x: 0.029, ratio: 0.995},
		{from: 41, to: 49, r: 0.065, x: 0.191, b: 0.02},
		{from: 41, to: 51, r: 0.031, x: 0.089, b: 0.036},
		{from: 42, to: 46, r: 0.002, x: 0.014, b: 0.806},
		{from: 43, to: 44, r: 0.026, x: 0.072, b: 0.035},
		{from: 43, to: 48, r: 0.095, x: 0.262, b: 0.032},
		{from: 43, to: 53, r: 0.013, x: 0.039, b: 0.016},
		{from: 44, to: 47, r: 0.027, x: 0.084, b: 0.039},
		{from: 44, to: 54, r: 0.028, x: 0.084, b: 0.037},
		{from: 45, to: 60, r: 0.007, x: 0.041, b: 0.312},
		{from: 45, to: 74, r: 0.009, x: 0.054, b: 0.411},
		{from: 46, to: 81, r: 0.005, x: 0.042, b: 0.69},
		{from: 47, to: 73, r: 0.052, x: 0.145, b: 0.073},
		{from: 47, to: 113, r: 0.043, x: 0.118, b: 0.013},
		{from: 48, to: 107, r: 0.025, x: 0.062, b: 0.007},
		{from: 49, to: 51, r: 0.031, x: 0.094, b: 0.043},
		{from: 51, to: 52, r: 0.037, x: 0.109, b: 0.049},
		{from: 52, to: 55, r: 0.027, x: 0.08, b: 0.036},
		{from: 53, to: 54, r: 0.025, x: 0.073, b: 0.035},
		{from: 54, to: 55, r: 0.035, x: 0.103, b: 0.047},
		{from: 55, to: 57, r: 0.065, x: 0.169, b: 0.082},
		{from: 57, to: 58, r: 0.046, x: 0.08, b: 0.036},
		{from: 57, to: 63, r: 0.159, x: 0.537, b: 0.071},
		{from: 58, to: 59, r: 0.009, x: 0.026, b: 0.005},
		{from: 59, to: 61, r: 0.002, x: 0.013, b: 0.015},
		{from: 60, to: 62, r: 0.009, x: 0.065, b: 0.485},
		{from: 62, to: 64, r: 0.016, x: 0.105, b: 0.203},
		{from: 62, to: 144, r: 0.001, x: 0.007, b: 0.013},
		{from: 63, to: 526, r: 0.0265, x: 0.172, b: 0.026},
		{from: 69, to: 211, r: 0.051, x: 0.232, b: 0.028},
		{from: 69, to: 79, r: 0.051, x: 0.157, b: 0.023},
		{from: 70, to: 71, r: 0.032, x: 0.1, b: 0.062},
		{from: 70, to: 528, r: 0.02, x: 0.1234, b: 0.028},
		{from: 71, to: 72, r: 0.036, x: 0.131, b: 0.068},
		{from: 71, to: 73, r: 0.034, x: 0.099, b: 0.047},
		{from: 72, to: 77, r: 0.018, x: 0.087, b: 0.011},
		{from: 72, to: 531, r: 0.0256, x: 0.193},
		{from: 73, to: 76, r: 0.021, x: 0.057, b: 0.03},
		{from: 73, to: 79, r: 0.018, x: 0.052, b: 0.018},
		{from: 74, to: 88, r: 0.004, x: 0.027, b: 0.05},
		{from: 74, to: 562, r: 0.0286, x: 0.2013, b: 0.379},
		{from: 76, to: 77, r: 0.016, x: 0.043, b: 0.004},
		{from: 77, to: 78, r: 0.001, x: 0.006, b: 0.007},
		{from: 77, to: 80, r: 0.014, x: 0.07, b: 0.038},
		{from: 77, to: 552, r: 0.0891, x: 0.2676, b: 0.029},
		{from: 77, to: 609, r: 0.0782, x: 0.2127, b: 0.022},
		{from: 78, to: 79, r: 0.006, x: 0.022, b: 0.011},
		{from: 78, to: 84, x: 0.036, ratio: 1},
		{from: 78, to: 85, r: 0.0099, x: 0.0248, b: 0.0022},
		{from: 80, to: 211, r: 0.022, x: 0.1, b: 0.05},
		{from: 80, to: 212, r: 0.038, x: 0.117, b: 0.023},
		{from: 84, to: 219, r: 0.0299, x: 0.0839},
		{from: 85, to: 86, r: 0.026, x: 0.081, b: 0.042},
		{from: 86, to: 87, r: 0.018, x: 0.063, b: 0.062},
		{from: 86, to: 323, r: 0.028, x: 0.187, b: 0.04},
		{from: 89, to: 91, r: 0.0003, x: 0.0059},
		{from: 90, to: 92, r: 0.0005, x: 0.0056},
		{from: 91, to: 94, r: 0.0042, x: 0.0396, b: 0.0134},
		{from: 91, to: 97, r: 0.0012, x: 0.0244, b: 0.0076},
		{from: 92, to: 103, r: 0.0014, x: 0.0185, b: 0.0057},
		{from: 92, to: 105, r: 0.0025, x: 0.0269, b: 0.0098},
		{from: 94, to: 97, r: 0.0014, x: 0.0156, b: 0.0053},
		{from: 97, to: 100, r: 0.0008, x: 0.0097, b: 0.0033},
		{from: 97, to: 102, r: 0.0019, x: 0.0216, b: 0.0073},
		{from: 97, to: 103, r: 0.0011, x: 0.0129, b: 0.0041},
		{from: 98, to: 100, r: 0.0048, x: 0.0426, b: 0.0147},
		{from: 98, to: 102, r: 0.0032, x: 0.0395, b: 0.0136},
		{from: 99, to: 107, r: 0.0024, x: 0.0227, b: 0.0071},
		{from: 99, to: 108, r: 0.0034, x: 0.0325, b: 0.0112},
		{from: 99, to: 109, r: 0.0016, x: 0.0146, b: 0.0047},
		{from: 99, to: 110, r: 0.0011, x: 0.0131, b: 0.0045},
		{from: 100, to: 102, r: 0.0025, x: 0.0313, b: 0.0108},
		{from: 100, to: 104, r: 0.0031, x: 0.0281, b: 0.0096},
		{from: 101, to: 103, r: 0.0022, x: 0.0193, b: 0.0066},
		{from: 102, to: 104, r: 0.0027, x: 0.0264, b: 0.0092},
		{from: 103, to: 105, r: 0.0028, x: 0.0235, b: 0.0079},
		{from: 104, to: 108, r: 0.0022, x: 0.0216, b: 0.0074},
		{from: 104, to: 322, r: 0.0011, x: 0.0093, b: 0.0034},
		{from: 105, to: 107, r: 0.0029, x: 0.0252, b: 0.0087},
		{from: 105, to: 110, r: 0.0015, x: 0.0162, b: 0.0056},
		{from: 108, to: 324, r: 0.0023, x: 0.0197, b: 0.0069},
		{from: 109, to: 110, r: 0.0012, x: 0.0116, b: 0.0042},
		{from: 109, to: 113, r: 0.0026, x: 0.0235, b: 0.0081},
		{from: 109, to: 114, r: 0.0021, x: 0.0192, b: 0.0065},
		{from: 110, to: 112, r: 0.0017, x: 0.0174, b: 0.0059},
		{from: 112, to: 114, r: 0.0014, x: 0.0149, b: 0.0052},
		{from: 115, to: 122, r: 0.0035, x: 0.0242, b: 0.0321},
		{from: 116, to: 120, r: 0.0025, x: 0.0191, b: 0.0237},
		{from: 117, to: 118, r: 0.0026, x: 0.0212, b: 0.0283},
		{from: 118, to: 119, r: 0.0012, x: 0.0096, b: 0.0126},
		{from: 118, to: 1201, r: 0.0013, x: 0.0108, b: 0.0141},
		{from: 1201, to: 120, r: 0.0013, x: 0.0108, b: 0.0141},
		{from: 118, to: 121, r: 0.0034, x: 0.0237, b: 0.0318},
		{from: 119, to: 120, r: 0.0029, x: 0.0218, b: 0.0285},
		{from: 119, to: 121, r: 0.0019, x: 0.0156, b: 0.0207},
		{from: 122, to: 123, r: 0.0016, x: 0.0131, b: 0.0176},
		{from: 122, to: 125, r: 0.0028, x: 0.0221, b: 0.0293},
		{from: 123, to: 124, r: 0.0017, x: 0.0147, b: 0.0198},
		{from: 123, to: 125, r: 0.0024, x: 0.0187, b: 0.0252},
		{from: 125, to: 126, r: 0.0021, x: 0.0161, b: 0.0218},
		{from: 126, to: 127, r: 0.0017, x: 0.0142, b: 0.0188},
		{from: 126, to: 129, r: 0.0032, x: 0.0278, b: 0.0369},
		{from: 126, to: 132, r: 0.0011, x: 0.0094, b: 0.0123},
		{from: 126, to: 157, r: 0.0023, x: 0.0191, b: 0.0256},
		{from: 126, to: 158, r: 0.0028, x: 0.0226, b: 0.0301},
		{from: 126, to: 169, r: 0.0036, x: 0.0296, b: 0.0397},
		{from: 127, to: 128, r: 0.0018, x: 0.0152, b: 0.0203},
		{from: 127, to: 134, r: 0.0022, x: 0.0186, b: 0.0247},
		{from: 127, to: 168, r: 0.0027, x: 0.0226, b: 0.0298},
		{from: 128, to: 130, r: 0.0013, x: 0.0118, b: 0.0156},
		{from: 128, to: 133, r: 0.0019, x: 0.0162, b: 0.0214},
		{from: 129, to: 130, r: 0.0011, x: 0.0098, b: 0.0131},
		{from: 129, to: 133, r: 0.0021, x: 0.0181, b: 0.0239},
		{from: 130, to: 132, r: 0.0016, x: 0.0135, b: 0.0179},
		{from: 130, to: 151, r: 0.0023, x: 0.0197, b: 0.0262},
		{from: 130, to: 167, r: 0.0014, x: 0.0126, b: 0.0167},
		{from: 130, to: 168, r: 0.0017, x: 0.0148, b: 0.0196},
		{from: 133, to: 137, r: 0.0021, x: 0.0177, b: 0.0235},
		{from: 133, to: 168, r: 0.0012, x: 0.0104, b: 0.0139},
		{from: 133, to: 169, r: 0.0024, x: 0.0209, b: 0.0276},
		{from: 133, to: 171, r: 0.0015, x: 0.0128, b: 0.0171},
		{from: 134, to: 135, r: 0.0019, x: 0.0166, b: 0.0221},
		{from: 134, to: 184, r: 0.0026, x: 0.0225, b: 0.0298},
		{from: 135, to: 136, r: 0.0016, x: 0.0139, b: 0.0185},
		{from: 136, to: 137, r: 0.0013, x: 0.0113, b: 0.0151},
		{from: 136, to: 152, r: 0.0029, x: 0.0251, b: 0.0332},
		{from: 137, to: 140, r: 0.0022, x: 0.0188, b: 0.0249},
		{from: 137, to: 181, r: 0.0018, x: 0.0154, b: 0.0205},
		{from: 137, to: 186, r: 0.0012, x: 0.0107, b: 0.0142},
		{from: 137, to: 188, r: 0.0015, x: 0.0131, b: 0.0174},
		{from: 139, to: 172, r: 0.0024, x: 0.0203, b: 0.0271},
		{from: 140, to: 141, r: 0.0011, x: 0.0096, b: 0.0128},
		{from: 140, to: 142, r: 0.0019, x: 0.0163, b: 0.0216},
		{from: 140, to: 145, r: 0.0016, x: 0.0138, b: 0.0183},
		{from: 140, to: 146, r: 0.0013, x: 0.0111, b: 0.0148},
		{from: 140, to: 147, r: 0.0013, x: 0.0111, b: 0.0148},
		{from: 140, to: 182, r: 0.0021, x: 0.0182, b: 0.0241},
		{from: 141, to: 146, r: 0.0009, x: 0.0078, b: 0.0104},
		{from: 142, to: 143, r: 0.0012, x: 0.0103, b: 0.0137},
		{from: 143, to: 145, r: 0.0017, x: 0.0146, b: 0.0194},
		{from: 143, to: 149, r: 0.0014, x: 0.0121, b: 0.0161},
		{from: 145, to: 146, r: 0.0011, x: 0.0094, b: 0.0125},
		{from: 145, to: 149, r: 0.0016, x: 0.0137, b: 0.0182},
		{from: 146, to: 147, r: 0.0004, x: 0.0036, b: 0.0048},
		{from: 148, to: 178, r: 0.0021, x: 0.0179, b: 0.0238},
		{from: 148, to: 179, r: 0.0018, x: 0.0155, b: 0.0206},
		{from: 152, to: 153, r: 0.0008, x: 0.0071, b: 0.0095},
		{from: 153, to: 161, r: 0.0023, x: 0.0195, b: 0.0259},
		{from: 154, to: 156, r: 0.0019, x: 0.0163, b: 0.0217},
		{from: 154, to: 183, r: 0.0027, x: 0.0231, b: 0.0307},
		{from: 155, to: 161, r: 0.0016, x: 0.0138, b: 0.0183},
		{from: 157, to: 159, r: 0.0021, x: 0.0184, b: 0.0244},
		{from: 158, to: 159, r: 0.0013, x: 0.0115, b: 0.0153},
		{from: 158, to: 160, r: 0.0017, x: 0.0147, b: 0.0195},
		{from: 162, to: 164, r: 0.0025, x: 0.0215, b: 0.0286},
		{from: 162, to: 165, r: 0.0022, x: 0.0191, b: 0.0254},
		{from: 163, to: 164, r: 0.0014, x: 0.0121, b: 0.0161},
		{from: 165, to: 166, r: 0.0018, x: 0.0156, b: 0.0207},
		{from: 167, to: 169, r: 0.0012, x: 0.0106, b: 0.0141},
		{from: 172, to: 173, r: 0.0019, x: 0.0167, b: 0.0222},
		{from: 172, to: 174, r: 0.0023, x: 0.0201, b: 0.0267},
		{from: 173, to: 174, r: 0.0011, x: 0.0095, b: 0.0126},
		{from: 173, to: 175, r: 0.0016, x: 0.0137, b: 0.0182},
		{from: 173, to: 176, r: 0.0014, x: 0.0122, b: 0.0162},
		{from: 175, to: 176, r: 0.0012, x: 0.0104, b: 0.0138},
		{from: 175, to: 179, r: 0.0021, x: 0.0178, b: 0.0237},
		{from: 175, to: 180, r: 0.0017, x: 0.0149, b: 0.0198},
		{from: 176, to: 177, r: 0.0009, x: 0.0079, b: 0.0105},
		{from: 177, to: 178, r: 0.0015, x: 0.0131, b: 0.0174},
		{from: 178, to: 179, r: 0.0013, x: 0.0112, b: 0.0149},
		{from: 178, to: 180, r: 0.0011, x: 0.0097, b: 0.0129},
		{from: 181, to: 138, r: 0.0006, x: 0.0052, b: 0.0069},
		{from: 181, to: 187, r: 0.0014, x: 0.0119, b: 0.0158},
		{from: 184, to: 185, r: 0.0018, x: 0.0154, b: 0.0205},
		{from: 186, to: 188, r: 0.0008, x: 0.0069, b: 0.0092},
		{from: 187, to: 188, r: 0.0008, x: 0.0069, b: 0.0092},
		{from: 188, to: 138, r: 0.0007, x: 0.0061, b: 0.0081},
		{from: 189, to: 208, r: 0.0161, x: 0.0471, b: 0.0061},
		{from: 189, to: 209, r: 0.0204, x: 0.0588, b: 0.0073},
		{from: 190, to: 231, r: 0.0012, x: 0.0103, b: 0.0137},
		{from: 190, to: 240, r: 0.0017, x: 0.0148, b: 0.0197},
		{from: 191, to: 192, r: 0.0006, x: 0.0052, b: 0.0069},
		{from: 192, to: 225, r: 0.0009, x: 0.0081, b: 0.0108},
		{from: 193, to: 205, r: 0.0183, x: 0.0522, b: 0.0066},
		{from: 193, to: 208, r: 0.0151, x: 0.0433, b: 0.0054},
		{from: 194, to: 219, r: 0.0131, x: 0.0376, b: 0.0049},
		{from: 194, to: 664, r: 0.0118, x: 0.0341, b: 0.0044},
		{from: 195, to: 219, r: 0.0142, x: 0.0408, b: 0.0052},
		{from: 196, to: 197, r: 0.0121, x: 0.0347, b: 0.0045},
		{from: 196, to: 210, r: 0.0097, x: 0.0279, b: 0.0036},
		{from: 197, to: 198, r: 0.0084, x: 0.0243, b: 0.0031},
		{from: 197, to: 211, r: 0.0132, x: 0.0381, b: 0.0049},
		{from: 198, to: 202, r: 0.0116, x: 0.0334, b: 0.0043},
		{from: 198, to: 203, r: 0.0091, x: 0.0263, b: 0.0034},
		{from: 198, to: 210, r: 0.0074, x: 0.0213, b: 0.0027},
		{from: 198, to: 211, r: 0.0105, x: 0.0302, b: 0.0039},
		{from: 199, to: 200, r: 0.0128, x: 0.0369, b: 0.0047},
		{from: 199, to: 210, r: 0.0101, x: 0.0291, b: 0.0037},
		{from: 200, to: 210, r: 0.0113, x: 0.0326, b: 0.0042},
		{from: 201, to: 204, r: 0.0139, x: 0.0401, b: 0.0051},
		{from: 203, to: 211, r: 0.0095, x: 0.0274, b: 0.0035},
		{from: 204, to: 205, r: 0.0126, x: 0.0362, b: 0.0046},
		{from: 205, to: 206, r: 0.0108, x: 0.0311, b: 0.004},
		{from: 206, to: 207, r: 0.0147, x: 0.0423, b: 0.0054},
		{from: 206, to: 208, r: 0.0119, x: 0.0343, b: 0.0044},
		{from: 212, to: 215, r: 0.0123, x: 0.0355, b: 0.0046},
		{from: 213, to: 214, r: 0.0041, x: 0.0281, b: 0.0378},
		{from: 214, to: 215, r: 0.0034, x: 0.0237, b: 0.0318},
		{from: 214, to: 242, r: 0.0029, x: 0.0198, b: 0.0266},
		{from: 215, to: 216, r: 0.0022, x: 0.0154, b: 0.0207},
		{from: 216, to: 217, r: 0.0018, x: 0.0127, b: 0.0171},
		{from: 217, to: 218, r: 0.0026, x: 0.0181, b: 0.0243},
		{from: 217, to: 219, r: 0.0031, x: 0.0215, b: 0.0289},
		{from: 217, to: 220, r: 0.0024, x: 0.0167, b: 0.0224},
		{from: 219, to: 237, r: 0.0035, x: 0.0243, b: 0.0326},
		{from: 220, to: 218, r: 0.0019, x: 0.0132, b: 0.0177},
		{from: 220, to: 221, r: 0.0014, x: 0.0098, b: 0.0132},
		{from: 220, to: 238, r: 0.0028, x: 0.0195, b: 0.0262},
		{from: 221, to: 223, r: 0.0017, x: 0.0118, b: 0.0159},
		{from: 222, to: 237, r: 0.0021, x: 0.0146, b: 0.0196},
		{from: 224, to: 225, r: 0.0016, x: 0.0112, b: 0.015},
		{from: 224, to: 226, r: 0.0023, x: 0.0161, b: 0.0216},
		{from: 225, to: 191, r: 0.0011, x: 0.0077, b: 0.0103},
		{from: 226, to: 231, r: 0.0027, x: 0.0188, b: 0.0252},
		{from: 227, to: 231, r: 0.0015, x: 0.0105, b: 0.0141},
		{from: 228, to: 229, r: 0.0018, x: 0.0125, b: 0.0168},
		{from: 228, to: 231, r: 0.0022, x: 0.0153, b: 0.0205},
		{from: 228, to: 234, r: 0.0019, x: 0.0134, b: 0.018},
		{from: 229, to: 190, r: 0.0025, x: 0.0174, b: 0.0233},
		{from: 231, to: 232, r: 0.0013, x: 0.0091, b: 0.0122},
		{from: 231, to: 237, r: 0.0029, x: 0.0202, b: 0.0271},
		{from: 232, to: 233, r: 0.0016, x: 0.0111, b: 0.0149},
		{from: 234, to: 235, r: 0.0012, x: 0.0084, b: 0.0113},
		{from: 234, to: 237, r: 0.0026, x: 0.0181, b: 0.0243},
		{from: 235, to: 238, r: 0.0017, x: 0.0119, b: 0.016},
		{from: 241, to: 237, r: 0.0008, x: 0.0056, b: 0.0075},
		{from: 240, to: 281, r: 0.0021, x: 0.0147, b: 0.0197},
		{from: 242, to: 245, r: 0.0041, x: 0.0287, b: 0.0385},
		{from: 242, to: 247, r: 0.0037, x: 0.0259, b: 0.0347},
		{from: 243, to: 244, r: 0.0024, x: 0.0168, b: 0.0225},
		{from: 243, to: 248, r: 0.0031, x: 0.0217, b: 0.0291},
		{from: 244, to: 246, r: 0.0019, x: 0.0133, b: 0.0178},
		{from: 245, to: 246, r: 0.0027, x: 0.0189, b: 0.0253},
		{from: 245, to: 247, r: 0.0022, x: 0.0154, b: 0.0207},
		{from: 246, to: 247, r: 0.0018, x: 0.0126, b: 0.0169},
		{from: 247, to: 248, r: 0.0029, x: 0.0203, b: 0.0272},
		{from: 248, to: 249, r: 0.0015, x: 0.0105, b: 0.0141},
		{from: 249, to: 250, r: 0.0032, x: 0.0224, b: 0.03},
		{from: 3, to: 1, x: 0.052, ratio: 0.947},
		{from: 3, to: 2, x: 0.052, ratio: 0.956},
		{from: 3, to: 4, x: 0.005, ratio: 0.971},
		{from: 7, to: 5, x: 0.039, ratio: 0.948},
		{from: 10, to: 11, x: 0.089, ratio: 1.046},
		{from: 12, to: 10, x: 0.053, ratio: 0.985},
		{from: 15, to: 17, r: 0.0194, x: 0.0311, ratio: 0.9561},
		{from: 16, to: 15, r: 0.001, x: 0.038, ratio: 0.971},
		{from: 21, to: 20, x: 0.014, ratio: 0.952},
		{from: 24, to: 23, x: 0.064, ratio: 0.943},
		{from: 36, to: 35, x: 0.047, ratio: 1.01},
		{from: 45, to: 44, x: 0.02, ratio: 1.008},
		{from: 45, to: 46, x: 0.021, ratio: 1},
		{from: 62, to: 61, x: 0.059, ratio: 0.975},
		{from: 63, to: 64, x: 0.038, ratio: 1.017},
		{from: 73, to: 74, x: 0.0244, ratio: 1},
		{from: 81, to: 88, x: 0.02, ratio: 1},
		{from: 85, to: 99, x: 0.048, ratio: 1},
		{from: 86, to: 102, x: 0.048, ratio: 1},
		{from: 87, to: 94, x: 0.046, ratio: 1.015},
		{from: 114, to: 207, x: 0.149, ratio: 0.967},
		{from: 116, to: 124, r: 0.0052, x: 0.0174, ratio: 1.01},
		{from: 121, to: 115, x: 0.0067, ratio: 1},
		{from: 122, to: 157, r: 0.0005, x: 0.0195, ratio: 1},
		{from: 130, to: 131, x: 0.0118, ratio: 1},
		{from: 130, to: 150, x: 0.0187, ratio: 1},
		{from: 132, to: 170, r: 0.001, x: 0.0253, ratio: 1},
		{from: 141, to: 174, r: 0.0024, x: 0.0438, ratio: 1},
		{from: 142, to: 175, r: 0.0024, x: 0.0405, ratio: 1},
		{from: 143, to: 144, x: 0.0221, ratio: 1},
		{from: 143, to: 148, r: 0.0013, x: 0.0337, ratio: 1},
		{from: 145, to: 180, r: 0.0005, x: 0.0153, ratio: 1},
		{from: 151, to: 170, r: 0.0012, x: 0.0208, ratio: 1},
		{from: 153, to: 183, r: 0.0022, x: 0.0306, ratio: 1},
		{from: 155, to: 156, r: 0.0008, x: 0.0159, ratio: 1},
		{from: 159, to: 117, x: 0.0218, ratio: 1},
		{from: 160, to: 124, r: 0.0005, x: 0.0185, ratio: 1},
		{from: 163, to: 137, r: 0.0004, x: 0.0096, ratio: 1},
		{from: 164, to: 155, r: 0.0005, x: 0.0135, ratio: 1},
		{from: 182, to: 139, r: 0.0003, x: 0.0078, ratio: 1},
		{from: 189, to: 210, x: 0.0204, ratio: 1},
		{from: 193, to: 196, x: 0.0181, ratio: 1},
		{from: 195, to: 212, r: 0.0008, x: 0.0181, ratio: 1},
		{from: 200, to: 248, x: 0.039, ratio: 1},
		{from: 201, to: 69, x: 0.0284, ratio: 1},
		{from: 202, to: 211, x: 0.0225, ratio: 1},
		{from: 204, to: 2040, r: 0.0003, x: 0.0077, ratio: 1},
		{from: 209, to: 198, r: 0.0001, x: 0.0257, ratio: 1},
		{from: 211, to: 212, r: 0.0002, x: 0.0259, ratio: 1},
		{from: 218, to: 219, r: 0.0004, x: 0.0151, ratio: 1},
		{from: 223, to: 224, r: 0.0008, x: 0.0189, ratio: 1},
		{from: 229, to: 230, x: 0.0125, ratio: 1},
		{from: 234, to: 236, r: 0.0001, x: 0.0125, ratio: 1},
		{from: 238, to: 239, r: 0.0003, x: 0.0134, ratio: 1},
		{from: 196, to: 2040, r: 0.0002, x: 0.0081, ratio: 1},
		{from: 119, to: 1190, r: 0.001, x: 0.0231, ratio: 1},
		{from: 120, to: 1200, r: 0.0005, x: 0.0298, ratio: 1},
		{from: 7002, to: 2, r: 0.001, x: 0.0162, ratio: 1},
		{from: 7003, to: 3, r: 0.0005, x: 0.0085, ratio: 1},
		{from: 7061, to: 61, r: 0.001, x: 0.0216, ratio: 1},
		{from: 7062, to: 62, r: 0.001, x: 0.0218, ratio: 1},
		{from: 7166, to: 166, x: 0.0164, ratio: 1},
		{from: 7024, to: 24, r: 0.001, x: 0.0202, ratio: 1},
		{from: 7001, to: 1, r: 0.0007, x: 0.0159, ratio: 1},
		{from: 7130, to: 130, r: 0.0004, x: 0.0069, ratio: 1},
		{from: 7011, to: 11, r: 0.0005, x: 0.0362, ratio: 1},
		{from: 7023, to: 23, r: 0.0009, x: 0.0295, ratio: 1},
		{from: 7049, to: 49, x: 0.0104, ratio: 1},
		{from: 7139, to: 139, r: 0.0005, x: 0.0118, ratio: 1},
		{from: 7012, to: 12, r: 0.0005, x: 0.0209, ratio: 1},
		{from: 7017, to: 17, r: 0.0006, x: 0.0204, ratio: 1},
		{from: 7039, to: 39, x: 0.0172, ratio: 1},
		{from: 7057, to: 57, r: 0.002, x: 0.0442, ratio: 1},
		{from: 7044, to: 44, r: 0.0005, x: 0.0488, ratio: 1},
		{from: 7055, to: 55, x: 0.0598, ratio: 1},
		{from: 7071, to: 71, r: 0.0009, x: 0.0479, ratio: 1},
	},
	gens: []genSpec{
		{bus: 8, pg: 0, qmax: 10, qmin: -10, vg: 1.0153},
		{bus: 10, pg: 0, qmax: 20, qmin: -20, vg: 1.0205},
		{bus: 20, pg: 0, qmax: 20, qmin: -20, vg: 1.001},
		{bus: 63, pg: 0, qmax: 25, qmin: -25, vg: 0.9583},
		{bus: 76, pg: 0, qmax: 35, qmin: -35, vg: 0.9632},
		{bus: 84, pg: 375, qmax: 240, qmin: -240, vg: 1.025, pmax: 470},
		{bus: 91, pg: 155, qmax: 96, qmin: -96, vg: 1.052, pmax: 200},
		{bus: 92, pg: 290, qmax: 153, qmin: -153, vg: 1.052, pmax: 370},
		{bus: 98, pg: 68, qmax: 56, qmin: -30, vg: 1, pmax: 90},
		{bus: 108, pg: 117, qmax: 77, qmin: -24, vg: 0.99, pmax: 150},
		{bus: 119, pg: 1930, qmax: 1500, qmin: -500, vg: 1.0435, pmax: 2420},
		{bus: 124, pg: 240, qmax: 120, qmin: -60, vg: 1.0233, pmax: 300},
		{bus: 125, pg: 0, qmax: 200, qmin: -25, vg: 1.0103},
		{bus: 138, pg: 0, qmax: 350, qmin: -125, vg: 1.055},
		{bus: 141, pg: 281, qmax: 75, qmin: -50, vg: 1.051, pmax: 360},
		{bus: 143, pg: 696, qmax: 300, qmin: -100, vg: 1.0435, pmax: 870},
		{bus: 146, pg: 84, qmax: 35, qmin: -15, vg: 1.0528, pmax: 110},
		{bus: 147, pg: 217, qmax: 100, qmin: -50, vg: 1.0528, pmax: 280},
		{bus: 149, pg: 103, qmax: 50, qmin: -25, vg: 1.0735, pmax: 130},
		{bus: 152, pg: 372, qmax: 175, qmin: -50, vg: 1.0535, pmax: 470},
		{bus: 153, pg: 216, qmax: 90, qmin: -50, vg: 1.0435, pmax: 270},
		{bus: 156, pg: 0, qmax: 15, qmin: -10, vg: 0.9655},
		{bus: 170, pg: 205, qmax: 90, qmin: -40, vg: 0.929, pmax: 260},
		{bus: 171, pg: 0, qmax: 150, qmin: -50, vg: 0.9829},
		{bus: 176, pg: 228, qmax: 90, qmin: -45, vg: 1.0522, pmax: 290},
		{bus: 177, pg: 84, qmax: 35, qmin: -15, vg: 1.0077, pmax: 110},
		{bus: 185, pg: 200, qmax: 80, qmin: -50, vg: 1.0522, pmax: 250},
		{bus: 186, pg: 1200, qmax: 400, qmin: -100, vg: 1.065, pmax: 1500},
		{bus: 187, pg: 1200, qmax: 400, qmin: -100, vg: 1.065, pmax: 1500},
		{bus: 190, pg: 475, qmax: 300, qmin: -300, vg: 1.0551, pmax: 600},
		{bus: 191, pg: 1973, qmax: 1000, qmin: -1000, vg: 1.0435, pmax: 2470},
		{bus: 198, pg: 424, qmax: 260, qmin: -260, vg: 1.015, pmax: 530},
		{bus: 213, pg: 272, qmax: 150, qmin: -150, vg: 1.01, pmax: 340},
		{bus: 220, pg: 100, qmax: 60, qmin: -60, vg: 1.008, pmax: 130},
		{bus: 221, pg: 450, qmax: 320, qmin: -320, vg: 1, pmax: 570},
		{bus: 222, pg: 250, qmax: 300, qmin: -300, vg: 1.05, pmax: 320},
		{bus: 227, pg: 303, qmax: 300, qmin: -300, vg: 1, pmax: 380},
		{bus: 230, pg: 345, qmax: 250, qmin: -250, vg: 1.04, pmax: 440},
		{bus: 233, pg: 300, qmax: 500, qmin: -500, vg: 1, pmax: 380},
		{bus: 236, pg: 600, qmax: 300, qmin: -300, vg: 1.0165, pmax: 750},
		{bus: 238, pg: 250, qmax: 200, qmin: -200, vg: 1.01, pmax: 320},
		{bus: 239, pg: 550, qmax: 400, qmin: -400, vg: 1, pmax: 690},
		{bus: 241, pg: 575.43, qmax: 600, qmin: -600, vg: 1.05, pmax: 720},
		{bus: 242, pg: 170, qmax: 100, qmin: -100, vg: 0.993, pmax: 220},
		{bus: 243, pg: 84, qmax: 80, qmin: -40, vg: 1.01, pmax: 110},
		{bus: 7001, pg: 467, qmax: 210, qmin: -210, vg: 1.0507, pmax: 590},
		{bus: 7002, pg: 623, qmax: 280, qmin: -280, vg: 1.0507, pmax: 780},
		{bus: 7003, pg: 1210, qmax: 420, qmin: -420, vg: 1.0323, pmax: 1520},
		{bus: 7011, pg: 234, qmax: 100, qmin: -100, vg: 1.0145, pmax: 300},
		{bus: 7012, pg: 372, qmax: 224, qmin: -224, vg: 1.0507, pmax: 470},
		{bus: 7017, pg: 330, qmax: 350, qmin: 0, vg: 1.0507, pmax: 420},
		{bus: 7023, pg: 185, qmax: 120, qmin: 0, vg: 1.0507, pmax: 240},
		{bus: 7024, pg: 410, qmax: 224, qmin: -224, vg: 1.029, pmax: 520},
		{bus: 7039, pg: 500, qmax: 200, qmin: -200, vg: 1.05, pmax: 630},
		{bus: 7044, pg: 37, qmax: 42, qmin: -42, vg: 1.0145, pmax: 50},
		{bus: 7049, pg: 0, qmax: 0, qmin: 0, vg: 1.0507, pmax: 200},
		{bus: 7055, pg: 45, qmax: 25, qmin: -25, vg: 0.9967, pmax: 60},
		{bus: 7057, pg: 165, qmax: 90, qmin: -90, vg: 1.0212, pmax: 210},
		{bus: 7061, pg: 400, qmax: 150, qmin: -150, vg: 1.0145, pmax: 500},
		{bus: 7062, pg: 400, qmax: 150, qmin: -150, vg: 1.0017, pmax: 500},
		{bus: 7071, pg: 116, qmax: 87, qmin: -87, vg: 0.9893, pmax: 150},
		{bus: 7130, pg: 1292, qmax: 600, qmin: -100, vg: 1.0507, pmax: 1620},
		{bus: 7139, pg: 700, qmax: 325, qmin: -125, vg: 1.0507, pmax: 880},
		{bus: 7166, pg: 553, qmax: 300, qmin: -200, vg: 1.0145, pmax: 700},
		{bus: 9002, pg: 0, qmax: 2, qmin: -2, vg: 0.9945},
		{bus: 9051, pg: 0, qmax: 17.35, qmin: -17.35, vg: 1},
		{bus: 9053, pg: 0, qmax: 13.4, qmin: -13.4, vg: 1},
		{bus: 9054, pg: 50, qmax: 25, qmin: 0, vg: 1, pmax: 70},
		{bus: 9055, pg: 8, qmax: 4, qmin: 0, vg: 1, pmax: 10},
	},
}

// CreateIEEE300 returns the IEEE 300-bus test network, with bus 7049 as
// the reference bus.
func CreateIEEE300() (*domain.Network, error) {
	return ieee300.build()
}
