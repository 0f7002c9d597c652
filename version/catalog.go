package version

// Catalog constants, oldest first. Each is named after the newest release
// sharing its wire behavior.
const (
	V1_7_5 Version = iota + 1
	V1_7_10
	V1_8_9
	V1_9
	V1_9_1
	V1_9_2
	V1_9_4
	V1_10_2
	V1_11
	V1_11_2
	V1_12
	V1_12_1
	V1_12_2
	V1_13
	V1_13_1
	V1_13_2
	V1_14
	V1_14_1
	V1_14_2
	V1_14_3
	V1_14_4
	V1_15
	V1_15_1
	V1_15_2
	V1_16
	V1_16_1
	V1_16_2
	V1_16_3
	V1_16_5
	V1_17
	V1_17_1
	V1_18_1
	V1_18_2
	V1_19
	V1_19_2
	V1_19_3
	V1_19_4
	V1_20_1
	V1_20_2
	V1_20_4
	V1_20_6
	V1_21_1
	V1_21_3
	V1_21_4
	V1_21_5
	V1_21_6
	V1_21_8
)

// catalog is indexed by Version. Slot 0 is Unknown.
var catalog = [...]entry{
	Unknown: {protocol: -1},
	V1_7_5:  {protocol: 4, releases: []string{"1.7.2", "1.7.3", "1.7.4", "1.7.5"}},
	V1_7_10: {protocol: 5, releases: []string{"1.7.6", "1.7.7", "1.7.8", "1.7.9", "1.7.10"}},
	V1_8_9:  {protocol: 47, releases: []string{"1.8", "1.8.1", "1.8.2", "1.8.3", "1.8.4", "1.8.5", "1.8.6", "1.8.7", "1.8.8", "1.8.9"}},
	V1_9:    {protocol: 107, releases: []string{"1.9"}},
	V1_9_1:  {protocol: 108, releases: []string{"1.9.1"}},
	V1_9_2:  {protocol: 109, releases: []string{"1.9.2"}},
	V1_9_4:  {protocol: 110, releases: []string{"1.9.3", "1.9.4"}},
	V1_10_2: {protocol: 210, releases: []string{"1.10", "1.10.1", "1.10.2"}},
	V1_11:   {protocol: 315, releases: []string{"1.11"}},
	V1_11_2: {protocol: 316, releases: []string{"1.11.1", "1.11.2"}},
	V1_12:   {protocol: 335, releases: []string{"1.12"}},
	V1_12_1: {protocol: 338, releases: []string{"1.12.1"}},
	V1_12_2: {protocol: 340, releases: []string{"1.12.2"}},
	V1_13:   {protocol: 393, releases: []string{"1.13"}},
	V1_13_1: {protocol: 401, releases: []string{"1.13.1"}},
	V1_13_2: {protocol: 404, releases: []string{"1.13.2"}},
	V1_14:   {protocol: 477, releases: []string{"1.14"}},
	V1_14_1: {protocol: 480, releases: []string{"1.14.1"}},
	V1_14_2: {protocol: 485, releases: []string{"1.14.2"}},
	V1_14_3: {protocol: 490, releases: []string{"1.14.3"}},
	V1_14_4: {protocol: 498, releases: []string{"1.14.4"}},
	V1_15:   {protocol: 573, releases: []string{"1.15"}},
	V1_15_1: {protocol: 575, releases: []string{"1.15.1"}},
	V1_15_2: {protocol: 578, releases: []string{"1.15.2"}},
	V1_16:   {protocol: 735, releases: []string{"1.16"}},
	V1_16_1: {protocol: 736, releases: []string{"1.16.1"}},
	V1_16_2: {protocol: 751, releases: []string{"1.16.2"}},
	V1_16_3: {protocol: 753, releases: []string{"1.16.3"}},
	V1_16_5: {protocol: 754, releases: []string{"1.16.4", "1.16.5"}},
	V1_17:   {protocol: 755, releases: []string{"1.17"}},
	V1_17_1: {protocol: 756, releases: []string{"1.17.1"}},
	V1_18_1: {protocol: 757, releases: []string{"1.18", "1.18.1"}},
	V1_18_2: {protocol: 758, releases: []string{"1.18.2"}},
	V1_19:   {protocol: 759, releases: []string{"1.19"}},
	V1_19_2: {protocol: 760, releases: []string{"1.19.1", "1.19.2"}},
	V1_19_3: {protocol: 761, releases: []string{"1.19.3"}},
	V1_19_4: {protocol: 762, releases: []string{"1.19.4"}},
	V1_20_1: {protocol: 763, releases: []string{"1.20", "1.20.1"}},
	V1_20_2: {protocol: 764, releases: []string{"1.20.2"}},
	V1_20_4: {protocol: 765, releases: []string{"1.20.3", "1.20.4"}},
	V1_20_6: {protocol: 766, releases: []string{"1.20.5", "1.20.6"}},
	V1_21_1: {protocol: 767, releases: []string{"1.21", "1.21.1"}},
	V1_21_3: {protocol: 768, releases: []string{"1.21.2", "1.21.3"}},
	V1_21_4: {protocol: 769, releases: []string{"1.21.4"}},
	V1_21_5: {protocol: 770, releases: []string{"1.21.5"}},
	V1_21_6: {protocol: 771, releases: []string{"1.21.6"}},
	V1_21_8: {protocol: 772, releases: []string{"1.21.7", "1.21.8"}},
}
