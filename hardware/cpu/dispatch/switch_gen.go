// generated code - do not change

package dispatch

// MaxIndex is the number of cases in the generated switch statements
const MaxIndex = 256

func dispatch(seq Sequencer, start int, end int) {
	switch start {
	case 0:
		seq.Perform(0)
		if end == 1 {
			return
		}
		fallthrough
	case 1:
		seq.Perform(1)
		if end == 2 {
			return
		}
		fallthrough
	case 2:
		seq.Perform(2)
		if end == 3 {
			return
		}
		fallthrough
	case 3:
		seq.Perform(3)
		if end == 4 {
			return
		}
		fallthrough
	case 4:
		seq.Perform(4)
		if end == 5 {
			return
		}
		fallthrough
	case 5:
		seq.Perform(5)
		if end == 6 {
			return
		}
		fallthrough
	case 6:
		seq.Perform(6)
		if end == 7 {
			return
		}
		fallthrough
	case 7:
		seq.Perform(7)
		if end == 8 {
			return
		}
		fallthrough
	case 8:
		seq.Perform(8)
		if end == 9 {
			return
		}
		fallthrough
	case 9:
		seq.Perform(9)
		if end == 10 {
			return
		}
		fallthrough
	case 10:
		seq.Perform(10)
		if end == 11 {
			return
		}
		fallthrough
	case 11:
		seq.Perform(11)
		if end == 12 {
			return
		}
		fallthrough
	case 12:
		seq.Perform(12)
		if end == 13 {
			return
		}
		fallthrough
	case 13:
		seq.Perform(13)
		if end == 14 {
			return
		}
		fallthrough
	case 14:
		seq.Perform(14)
		if end == 15 {
			return
		}
		fallthrough
	case 15:
		seq.Perform(15)
		if end == 16 {
			return
		}
		fallthrough
	case 16:
		seq.Perform(16)
		if end == 17 {
			return
		}
		fallthrough
	case 17:
		seq.Perform(17)
		if end == 18 {
			return
		}
		fallthrough
	case 18:
		seq.Perform(18)
		if end == 19 {
			return
		}
		fallthrough
	case 19:
		seq.Perform(19)
		if end == 20 {
			return
		}
		fallthrough
	case 20:
		seq.Perform(20)
		if end == 21 {
			return
		}
		fallthrough
	case 21:
		seq.Perform(21)
		if end == 22 {
			return
		}
		fallthrough
	case 22:
		seq.Perform(22)
		if end == 23 {
			return
		}
		fallthrough
	case 23:
		seq.Perform(23)
		if end == 24 {
			return
		}
		fallthrough
	case 24:
		seq.Perform(24)
		if end == 25 {
			return
		}
		fallthrough
	case 25:
		seq.Perform(25)
		if end == 26 {
			return
		}
		fallthrough
	case 26:
		seq.Perform(26)
		if end == 27 {
			return
		}
		fallthrough
	case 27:
		seq.Perform(27)
		if end == 28 {
			return
		}
		fallthrough
	case 28:
		seq.Perform(28)
		if end == 29 {
			return
		}
		fallthrough
	case 29:
		seq.Perform(29)
		if end == 30 {
			return
		}
		fallthrough
	case 30:
		seq.Perform(30)
		if end == 31 {
			return
		}
		fallthrough
	case 31:
		seq.Perform(31)
		if end == 32 {
			return
		}
		fallthrough
	case 32:
		seq.Perform(32)
		if end == 33 {
			return
		}
		fallthrough
	case 33:
		seq.Perform(33)
		if end == 34 {
			return
		}
		fallthrough
	case 34:
		seq.Perform(34)
		if end == 35 {
			return
		}
		fallthrough
	case 35:
		seq.Perform(35)
		if end == 36 {
			return
		}
		fallthrough
	case 36:
		seq.Perform(36)
		if end == 37 {
			return
		}
		fallthrough
	case 37:
		seq.Perform(37)
		if end == 38 {
			return
		}
		fallthrough
	case 38:
		seq.Perform(38)
		if end == 39 {
			return
		}
		fallthrough
	case 39:
		seq.Perform(39)
		if end == 40 {
			return
		}
		fallthrough
	case 40:
		seq.Perform(40)
		if end == 41 {
			return
		}
		fallthrough
	case 41:
		seq.Perform(41)
		if end == 42 {
			return
		}
		fallthrough
	case 42:
		seq.Perform(42)
		if end == 43 {
			return
		}
		fallthrough
	case 43:
		seq.Perform(43)
		if end == 44 {
			return
		}
		fallthrough
	case 44:
		seq.Perform(44)
		if end == 45 {
			return
		}
		fallthrough
	case 45:
		seq.Perform(45)
		if end == 46 {
			return
		}
		fallthrough
	case 46:
		seq.Perform(46)
		if end == 47 {
			return
		}
		fallthrough
	case 47:
		seq.Perform(47)
		if end == 48 {
			return
		}
		fallthrough
	case 48:
		seq.Perform(48)
		if end == 49 {
			return
		}
		fallthrough
	case 49:
		seq.Perform(49)
		if end == 50 {
			return
		}
		fallthrough
	case 50:
		seq.Perform(50)
		if end == 51 {
			return
		}
		fallthrough
	case 51:
		seq.Perform(51)
		if end == 52 {
			return
		}
		fallthrough
	case 52:
		seq.Perform(52)
		if end == 53 {
			return
		}
		fallthrough
	case 53:
		seq.Perform(53)
		if end == 54 {
			return
		}
		fallthrough
	case 54:
		seq.Perform(54)
		if end == 55 {
			return
		}
		fallthrough
	case 55:
		seq.Perform(55)
		if end == 56 {
			return
		}
		fallthrough
	case 56:
		seq.Perform(56)
		if end == 57 {
			return
		}
		fallthrough
	case 57:
		seq.Perform(57)
		if end == 58 {
			return
		}
		fallthrough
	case 58:
		seq.Perform(58)
		if end == 59 {
			return
		}
		fallthrough
	case 59:
		seq.Perform(59)
		if end == 60 {
			return
		}
		fallthrough
	case 60:
		seq.Perform(60)
		if end == 61 {
			return
		}
		fallthrough
	case 61:
		seq.Perform(61)
		if end == 62 {
			return
		}
		fallthrough
	case 62:
		seq.Perform(62)
		if end == 63 {
			return
		}
		fallthrough
	case 63:
		seq.Perform(63)
		if end == 64 {
			return
		}
		fallthrough
	case 64:
		seq.Perform(64)
		if end == 65 {
			return
		}
		fallthrough
	case 65:
		seq.Perform(65)
		if end == 66 {
			return
		}
		fallthrough
	case 66:
		seq.Perform(66)
		if end == 67 {
			return
		}
		fallthrough
	case 67:
		seq.Perform(67)
		if end == 68 {
			return
		}
		fallthrough
	case 68:
		seq.Perform(68)
		if end == 69 {
			return
		}
		fallthrough
	case 69:
		seq.Perform(69)
		if end == 70 {
			return
		}
		fallthrough
	case 70:
		seq.Perform(70)
		if end == 71 {
			return
		}
		fallthrough
	case 71:
		seq.Perform(71)
		if end == 72 {
			return
		}
		fallthrough
	case 72:
		seq.Perform(72)
		if end == 73 {
			return
		}
		fallthrough
	case 73:
		seq.Perform(73)
		if end == 74 {
			return
		}
		fallthrough
	case 74:
		seq.Perform(74)
		if end == 75 {
			return
		}
		fallthrough
	case 75:
		seq.Perform(75)
		if end == 76 {
			return
		}
		fallthrough
	case 76:
		seq.Perform(76)
		if end == 77 {
			return
		}
		fallthrough
	case 77:
		seq.Perform(77)
		if end == 78 {
			return
		}
		fallthrough
	case 78:
		seq.Perform(78)
		if end == 79 {
			return
		}
		fallthrough
	case 79:
		seq.Perform(79)
		if end == 80 {
			return
		}
		fallthrough
	case 80:
		seq.Perform(80)
		if end == 81 {
			return
		}
		fallthrough
	case 81:
		seq.Perform(81)
		if end == 82 {
			return
		}
		fallthrough
	case 82:
		seq.Perform(82)
		if end == 83 {
			return
		}
		fallthrough
	case 83:
		seq.Perform(83)
		if end == 84 {
			return
		}
		fallthrough
	case 84:
		seq.Perform(84)
		if end == 85 {
			return
		}
		fallthrough
	case 85:
		seq.Perform(85)
		if end == 86 {
			return
		}
		fallthrough
	case 86:
		seq.Perform(86)
		if end == 87 {
			return
		}
		fallthrough
	case 87:
		seq.Perform(87)
		if end == 88 {
			return
		}
		fallthrough
	case 88:
		seq.Perform(88)
		if end == 89 {
			return
		}
		fallthrough
	case 89:
		seq.Perform(89)
		if end == 90 {
			return
		}
		fallthrough
	case 90:
		seq.Perform(90)
		if end == 91 {
			return
		}
		fallthrough
	case 91:
		seq.Perform(91)
		if end == 92 {
			return
		}
		fallthrough
	case 92:
		seq.Perform(92)
		if end == 93 {
			return
		}
		fallthrough
	case 93:
		seq.Perform(93)
		if end == 94 {
			return
		}
		fallthrough
	case 94:
		seq.Perform(94)
		if end == 95 {
			return
		}
		fallthrough
	case 95:
		seq.Perform(95)
		if end == 96 {
			return
		}
		fallthrough
	case 96:
		seq.Perform(96)
		if end == 97 {
			return
		}
		fallthrough
	case 97:
		seq.Perform(97)
		if end == 98 {
			return
		}
		fallthrough
	case 98:
		seq.Perform(98)
		if end == 99 {
			return
		}
		fallthrough
	case 99:
		seq.Perform(99)
		if end == 100 {
			return
		}
		fallthrough
	case 100:
		seq.Perform(100)
		if end == 101 {
			return
		}
		fallthrough
	case 101:
		seq.Perform(101)
		if end == 102 {
			return
		}
		fallthrough
	case 102:
		seq.Perform(102)
		if end == 103 {
			return
		}
		fallthrough
	case 103:
		seq.Perform(103)
		if end == 104 {
			return
		}
		fallthrough
	case 104:
		seq.Perform(104)
		if end == 105 {
			return
		}
		fallthrough
	case 105:
		seq.Perform(105)
		if end == 106 {
			return
		}
		fallthrough
	case 106:
		seq.Perform(106)
		if end == 107 {
			return
		}
		fallthrough
	case 107:
		seq.Perform(107)
		if end == 108 {
			return
		}
		fallthrough
	case 108:
		seq.Perform(108)
		if end == 109 {
			return
		}
		fallthrough
	case 109:
		seq.Perform(109)
		if end == 110 {
			return
		}
		fallthrough
	case 110:
		seq.Perform(110)
		if end == 111 {
			return
		}
		fallthrough
	case 111:
		seq.Perform(111)
		if end == 112 {
			return
		}
		fallthrough
	case 112:
		seq.Perform(112)
		if end == 113 {
			return
		}
		fallthrough
	case 113:
		seq.Perform(113)
		if end == 114 {
			return
		}
		fallthrough
	case 114:
		seq.Perform(114)
		if end == 115 {
			return
		}
		fallthrough
	case 115:
		seq.Perform(115)
		if end == 116 {
			return
		}
		fallthrough
	case 116:
		seq.Perform(116)
		if end == 117 {
			return
		}
		fallthrough
	case 117:
		seq.Perform(117)
		if end == 118 {
			return
		}
		fallthrough
	case 118:
		seq.Perform(118)
		if end == 119 {
			return
		}
		fallthrough
	case 119:
		seq.Perform(119)
		if end == 120 {
			return
		}
		fallthrough
	case 120:
		seq.Perform(120)
		if end == 121 {
			return
		}
		fallthrough
	case 121:
		seq.Perform(121)
		if end == 122 {
			return
		}
		fallthrough
	case 122:
		seq.Perform(122)
		if end == 123 {
			return
		}
		fallthrough
	case 123:
		seq.Perform(123)
		if end == 124 {
			return
		}
		fallthrough
	case 124:
		seq.Perform(124)
		if end == 125 {
			return
		}
		fallthrough
	case 125:
		seq.Perform(125)
		if end == 126 {
			return
		}
		fallthrough
	case 126:
		seq.Perform(126)
		if end == 127 {
			return
		}
		fallthrough
	case 127:
		seq.Perform(127)
		if end == 128 {
			return
		}
		fallthrough
	case 128:
		seq.Perform(128)
		if end == 129 {
			return
		}
		fallthrough
	case 129:
		seq.Perform(129)
		if end == 130 {
			return
		}
		fallthrough
	case 130:
		seq.Perform(130)
		if end == 131 {
			return
		}
		fallthrough
	case 131:
		seq.Perform(131)
		if end == 132 {
			return
		}
		fallthrough
	case 132:
		seq.Perform(132)
		if end == 133 {
			return
		}
		fallthrough
	case 133:
		seq.Perform(133)
		if end == 134 {
			return
		}
		fallthrough
	case 134:
		seq.Perform(134)
		if end == 135 {
			return
		}
		fallthrough
	case 135:
		seq.Perform(135)
		if end == 136 {
			return
		}
		fallthrough
	case 136:
		seq.Perform(136)
		if end == 137 {
			return
		}
		fallthrough
	case 137:
		seq.Perform(137)
		if end == 138 {
			return
		}
		fallthrough
	case 138:
		seq.Perform(138)
		if end == 139 {
			return
		}
		fallthrough
	case 139:
		seq.Perform(139)
		if end == 140 {
			return
		}
		fallthrough
	case 140:
		seq.Perform(140)
		if end == 141 {
			return
		}
		fallthrough
	case 141:
		seq.Perform(141)
		if end == 142 {
			return
		}
		fallthrough
	case 142:
		seq.Perform(142)
		if end == 143 {
			return
		}
		fallthrough
	case 143:
		seq.Perform(143)
		if end == 144 {
			return
		}
		fallthrough
	case 144:
		seq.Perform(144)
		if end == 145 {
			return
		}
		fallthrough
	case 145:
		seq.Perform(145)
		if end == 146 {
			return
		}
		fallthrough
	case 146:
		seq.Perform(146)
		if end == 147 {
			return
		}
		fallthrough
	case 147:
		seq.Perform(147)
		if end == 148 {
			return
		}
		fallthrough
	case 148:
		seq.Perform(148)
		if end == 149 {
			return
		}
		fallthrough
	case 149:
		seq.Perform(149)
		if end == 150 {
			return
		}
		fallthrough
	case 150:
		seq.Perform(150)
		if end == 151 {
			return
		}
		fallthrough
	case 151:
		seq.Perform(151)
		if end == 152 {
			return
		}
		fallthrough
	case 152:
		seq.Perform(152)
		if end == 153 {
			return
		}
		fallthrough
	case 153:
		seq.Perform(153)
		if end == 154 {
			return
		}
		fallthrough
	case 154:
		seq.Perform(154)
		if end == 155 {
			return
		}
		fallthrough
	case 155:
		seq.Perform(155)
		if end == 156 {
			return
		}
		fallthrough
	case 156:
		seq.Perform(156)
		if end == 157 {
			return
		}
		fallthrough
	case 157:
		seq.Perform(157)
		if end == 158 {
			return
		}
		fallthrough
	case 158:
		seq.Perform(158)
		if end == 159 {
			return
		}
		fallthrough
	case 159:
		seq.Perform(159)
		if end == 160 {
			return
		}
		fallthrough
	case 160:
		seq.Perform(160)
		if end == 161 {
			return
		}
		fallthrough
	case 161:
		seq.Perform(161)
		if end == 162 {
			return
		}
		fallthrough
	case 162:
		seq.Perform(162)
		if end == 163 {
			return
		}
		fallthrough
	case 163:
		seq.Perform(163)
		if end == 164 {
			return
		}
		fallthrough
	case 164:
		seq.Perform(164)
		if end == 165 {
			return
		}
		fallthrough
	case 165:
		seq.Perform(165)
		if end == 166 {
			return
		}
		fallthrough
	case 166:
		seq.Perform(166)
		if end == 167 {
			return
		}
		fallthrough
	case 167:
		seq.Perform(167)
		if end == 168 {
			return
		}
		fallthrough
	case 168:
		seq.Perform(168)
		if end == 169 {
			return
		}
		fallthrough
	case 169:
		seq.Perform(169)
		if end == 170 {
			return
		}
		fallthrough
	case 170:
		seq.Perform(170)
		if end == 171 {
			return
		}
		fallthrough
	case 171:
		seq.Perform(171)
		if end == 172 {
			return
		}
		fallthrough
	case 172:
		seq.Perform(172)
		if end == 173 {
			return
		}
		fallthrough
	case 173:
		seq.Perform(173)
		if end == 174 {
			return
		}
		fallthrough
	case 174:
		seq.Perform(174)
		if end == 175 {
			return
		}
		fallthrough
	case 175:
		seq.Perform(175)
		if end == 176 {
			return
		}
		fallthrough
	case 176:
		seq.Perform(176)
		if end == 177 {
			return
		}
		fallthrough
	case 177:
		seq.Perform(177)
		if end == 178 {
			return
		}
		fallthrough
	case 178:
		seq.Perform(178)
		if end == 179 {
			return
		}
		fallthrough
	case 179:
		seq.Perform(179)
		if end == 180 {
			return
		}
		fallthrough
	case 180:
		seq.Perform(180)
		if end == 181 {
			return
		}
		fallthrough
	case 181:
		seq.Perform(181)
		if end == 182 {
			return
		}
		fallthrough
	case 182:
		seq.Perform(182)
		if end == 183 {
			return
		}
		fallthrough
	case 183:
		seq.Perform(183)
		if end == 184 {
			return
		}
		fallthrough
	case 184:
		seq.Perform(184)
		if end == 185 {
			return
		}
		fallthrough
	case 185:
		seq.Perform(185)
		if end == 186 {
			return
		}
		fallthrough
	case 186:
		seq.Perform(186)
		if end == 187 {
			return
		}
		fallthrough
	case 187:
		seq.Perform(187)
		if end == 188 {
			return
		}
		fallthrough
	case 188:
		seq.Perform(188)
		if end == 189 {
			return
		}
		fallthrough
	case 189:
		seq.Perform(189)
		if end == 190 {
			return
		}
		fallthrough
	case 190:
		seq.Perform(190)
		if end == 191 {
			return
		}
		fallthrough
	case 191:
		seq.Perform(191)
		if end == 192 {
			return
		}
		fallthrough
	case 192:
		seq.Perform(192)
		if end == 193 {
			return
		}
		fallthrough
	case 193:
		seq.Perform(193)
		if end == 194 {
			return
		}
		fallthrough
	case 194:
		seq.Perform(194)
		if end == 195 {
			return
		}
		fallthrough
	case 195:
		seq.Perform(195)
		if end == 196 {
			return
		}
		fallthrough
	case 196:
		seq.Perform(196)
		if end == 197 {
			return
		}
		fallthrough
	case 197:
		seq.Perform(197)
		if end == 198 {
			return
		}
		fallthrough
	case 198:
		seq.Perform(198)
		if end == 199 {
			return
		}
		fallthrough
	case 199:
		seq.Perform(199)
		if end == 200 {
			return
		}
		fallthrough
	case 200:
		seq.Perform(200)
		if end == 201 {
			return
		}
		fallthrough
	case 201:
		seq.Perform(201)
		if end == 202 {
			return
		}
		fallthrough
	case 202:
		seq.Perform(202)
		if end == 203 {
			return
		}
		fallthrough
	case 203:
		seq.Perform(203)
		if end == 204 {
			return
		}
		fallthrough
	case 204:
		seq.Perform(204)
		if end == 205 {
			return
		}
		fallthrough
	case 205:
		seq.Perform(205)
		if end == 206 {
			return
		}
		fallthrough
	case 206:
		seq.Perform(206)
		if end == 207 {
			return
		}
		fallthrough
	case 207:
		seq.Perform(207)
		if end == 208 {
			return
		}
		fallthrough
	case 208:
		seq.Perform(208)
		if end == 209 {
			return
		}
		fallthrough
	case 209:
		seq.Perform(209)
		if end == 210 {
			return
		}
		fallthrough
	case 210:
		seq.Perform(210)
		if end == 211 {
			return
		}
		fallthrough
	case 211:
		seq.Perform(211)
		if end == 212 {
			return
		}
		fallthrough
	case 212:
		seq.Perform(212)
		if end == 213 {
			return
		}
		fallthrough
	case 213:
		seq.Perform(213)
		if end == 214 {
			return
		}
		fallthrough
	case 214:
		seq.Perform(214)
		if end == 215 {
			return
		}
		fallthrough
	case 215:
		seq.Perform(215)
		if end == 216 {
			return
		}
		fallthrough
	case 216:
		seq.Perform(216)
		if end == 217 {
			return
		}
		fallthrough
	case 217:
		seq.Perform(217)
		if end == 218 {
			return
		}
		fallthrough
	case 218:
		seq.Perform(218)
		if end == 219 {
			return
		}
		fallthrough
	case 219:
		seq.Perform(219)
		if end == 220 {
			return
		}
		fallthrough
	case 220:
		seq.Perform(220)
		if end == 221 {
			return
		}
		fallthrough
	case 221:
		seq.Perform(221)
		if end == 222 {
			return
		}
		fallthrough
	case 222:
		seq.Perform(222)
		if end == 223 {
			return
		}
		fallthrough
	case 223:
		seq.Perform(223)
		if end == 224 {
			return
		}
		fallthrough
	case 224:
		seq.Perform(224)
		if end == 225 {
			return
		}
		fallthrough
	case 225:
		seq.Perform(225)
		if end == 226 {
			return
		}
		fallthrough
	case 226:
		seq.Perform(226)
		if end == 227 {
			return
		}
		fallthrough
	case 227:
		seq.Perform(227)
		if end == 228 {
			return
		}
		fallthrough
	case 228:
		seq.Perform(228)
		if end == 229 {
			return
		}
		fallthrough
	case 229:
		seq.Perform(229)
		if end == 230 {
			return
		}
		fallthrough
	case 230:
		seq.Perform(230)
		if end == 231 {
			return
		}
		fallthrough
	case 231:
		seq.Perform(231)
		if end == 232 {
			return
		}
		fallthrough
	case 232:
		seq.Perform(232)
		if end == 233 {
			return
		}
		fallthrough
	case 233:
		seq.Perform(233)
		if end == 234 {
			return
		}
		fallthrough
	case 234:
		seq.Perform(234)
		if end == 235 {
			return
		}
		fallthrough
	case 235:
		seq.Perform(235)
		if end == 236 {
			return
		}
		fallthrough
	case 236:
		seq.Perform(236)
		if end == 237 {
			return
		}
		fallthrough
	case 237:
		seq.Perform(237)
		if end == 238 {
			return
		}
		fallthrough
	case 238:
		seq.Perform(238)
		if end == 239 {
			return
		}
		fallthrough
	case 239:
		seq.Perform(239)
		if end == 240 {
			return
		}
		fallthrough
	case 240:
		seq.Perform(240)
		if end == 241 {
			return
		}
		fallthrough
	case 241:
		seq.Perform(241)
		if end == 242 {
			return
		}
		fallthrough
	case 242:
		seq.Perform(242)
		if end == 243 {
			return
		}
		fallthrough
	case 243:
		seq.Perform(243)
		if end == 244 {
			return
		}
		fallthrough
	case 244:
		seq.Perform(244)
		if end == 245 {
			return
		}
		fallthrough
	case 245:
		seq.Perform(245)
		if end == 246 {
			return
		}
		fallthrough
	case 246:
		seq.Perform(246)
		if end == 247 {
			return
		}
		fallthrough
	case 247:
		seq.Perform(247)
		if end == 248 {
			return
		}
		fallthrough
	case 248:
		seq.Perform(248)
		if end == 249 {
			return
		}
		fallthrough
	case 249:
		seq.Perform(249)
		if end == 250 {
			return
		}
		fallthrough
	case 250:
		seq.Perform(250)
		if end == 251 {
			return
		}
		fallthrough
	case 251:
		seq.Perform(251)
		if end == 252 {
			return
		}
		fallthrough
	case 252:
		seq.Perform(252)
		if end == 253 {
			return
		}
		fallthrough
	case 253:
		seq.Perform(253)
		if end == 254 {
			return
		}
		fallthrough
	case 254:
		seq.Perform(254)
		if end == 255 {
			return
		}
		fallthrough
	case 255:
		seq.Perform(255)
	}
}

func dispatchConverted(seq Sequencer, start int, end int, convert func(int) int) {
	switch start {
	case 0:
		seq.Perform(convert(0))
		if end == 1 {
			return
		}
		fallthrough
	case 1:
		seq.Perform(convert(1))
		if end == 2 {
			return
		}
		fallthrough
	case 2:
		seq.Perform(convert(2))
		if end == 3 {
			return
		}
		fallthrough
	case 3:
		seq.Perform(convert(3))
		if end == 4 {
			return
		}
		fallthrough
	case 4:
		seq.Perform(convert(4))
		if end == 5 {
			return
		}
		fallthrough
	case 5:
		seq.Perform(convert(5))
		if end == 6 {
			return
		}
		fallthrough
	case 6:
		seq.Perform(convert(6))
		if end == 7 {
			return
		}
		fallthrough
	case 7:
		seq.Perform(convert(7))
		if end == 8 {
			return
		}
		fallthrough
	case 8:
		seq.Perform(convert(8))
		if end == 9 {
			return
		}
		fallthrough
	case 9:
		seq.Perform(convert(9))
		if end == 10 {
			return
		}
		fallthrough
	case 10:
		seq.Perform(convert(10))
		if end == 11 {
			return
		}
		fallthrough
	case 11:
		seq.Perform(convert(11))
		if end == 12 {
			return
		}
		fallthrough
	case 12:
		seq.Perform(convert(12))
		if end == 13 {
			return
		}
		fallthrough
	case 13:
		seq.Perform(convert(13))
		if end == 14 {
			return
		}
		fallthrough
	case 14:
		seq.Perform(convert(14))
		if end == 15 {
			return
		}
		fallthrough
	case 15:
		seq.Perform(convert(15))
		if end == 16 {
			return
		}
		fallthrough
	case 16:
		seq.Perform(convert(16))
		if end == 17 {
			return
		}
		fallthrough
	case 17:
		seq.Perform(convert(17))
		if end == 18 {
			return
		}
		fallthrough
	case 18:
		seq.Perform(convert(18))
		if end == 19 {
			return
		}
		fallthrough
	case 19:
		seq.Perform(convert(19))
		if end == 20 {
			return
		}
		fallthrough
	case 20:
		seq.Perform(convert(20))
		if end == 21 {
			return
		}
		fallthrough
	case 21:
		seq.Perform(convert(21))
		if end == 22 {
			return
		}
		fallthrough
	case 22:
		seq.Perform(convert(22))
		if end == 23 {
			return
		}
		fallthrough
	case 23:
		seq.Perform(convert(23))
		if end == 24 {
			return
		}
		fallthrough
	case 24:
		seq.Perform(convert(24))
		if end == 25 {
			return
		}
		fallthrough
	case 25:
		seq.Perform(convert(25))
		if end == 26 {
			return
		}
		fallthrough
	case 26:
		seq.Perform(convert(26))
		if end == 27 {
			return
		}
		fallthrough
	case 27:
		seq.Perform(convert(27))
		if end == 28 {
			return
		}
		fallthrough
	case 28:
		seq.Perform(convert(28))
		if end == 29 {
			return
		}
		fallthrough
	case 29:
		seq.Perform(convert(29))
		if end == 30 {
			return
		}
		fallthrough
	case 30:
		seq.Perform(convert(30))
		if end == 31 {
			return
		}
		fallthrough
	case 31:
		seq.Perform(convert(31))
		if end == 32 {
			return
		}
		fallthrough
	case 32:
		seq.Perform(convert(32))
		if end == 33 {
			return
		}
		fallthrough
	case 33:
		seq.Perform(convert(33))
		if end == 34 {
			return
		}
		fallthrough
	case 34:
		seq.Perform(convert(34))
		if end == 35 {
			return
		}
		fallthrough
	case 35:
		seq.Perform(convert(35))
		if end == 36 {
			return
		}
		fallthrough
	case 36:
		seq.Perform(convert(36))
		if end == 37 {
			return
		}
		fallthrough
	case 37:
		seq.Perform(convert(37))
		if end == 38 {
			return
		}
		fallthrough
	case 38:
		seq.Perform(convert(38))
		if end == 39 {
			return
		}
		fallthrough
	case 39:
		seq.Perform(convert(39))
		if end == 40 {
			return
		}
		fallthrough
	case 40:
		seq.Perform(convert(40))
		if end == 41 {
			return
		}
		fallthrough
	case 41:
		seq.Perform(convert(41))
		if end == 42 {
			return
		}
		fallthrough
	case 42:
		seq.Perform(convert(42))
		if end == 43 {
			return
		}
		fallthrough
	case 43:
		seq.Perform(convert(43))
		if end == 44 {
			return
		}
		fallthrough
	case 44:
		seq.Perform(convert(44))
		if end == 45 {
			return
		}
		fallthrough
	case 45:
		seq.Perform(convert(45))
		if end == 46 {
			return
		}
		fallthrough
	case 46:
		seq.Perform(convert(46))
		if end == 47 {
			return
		}
		fallthrough
	case 47:
		seq.Perform(convert(47))
		if end == 48 {
			return
		}
		fallthrough
	case 48:
		seq.Perform(convert(48))
		if end == 49 {
			return
		}
		fallthrough
	case 49:
		seq.Perform(convert(49))
		if end == 50 {
			return
		}
		fallthrough
	case 50:
		seq.Perform(convert(50))
		if end == 51 {
			return
		}
		fallthrough
	case 51:
		seq.Perform(convert(51))
		if end == 52 {
			return
		}
		fallthrough
	case 52:
		seq.Perform(convert(52))
		if end == 53 {
			return
		}
		fallthrough
	case 53:
		seq.Perform(convert(53))
		if end == 54 {
			return
		}
		fallthrough
	case 54:
		seq.Perform(convert(54))
		if end == 55 {
			return
		}
		fallthrough
	case 55:
		seq.Perform(convert(55))
		if end == 56 {
			return
		}
		fallthrough
	case 56:
		seq.Perform(convert(56))
		if end == 57 {
			return
		}
		fallthrough
	case 57:
		seq.Perform(convert(57))
		if end == 58 {
			return
		}
		fallthrough
	case 58:
		seq.Perform(convert(58))
		if end == 59 {
			return
		}
		fallthrough
	case 59:
		seq.Perform(convert(59))
		if end == 60 {
			return
		}
		fallthrough
	case 60:
		seq.Perform(convert(60))
		if end == 61 {
			return
		}
		fallthrough
	case 61:
		seq.Perform(convert(61))
		if end == 62 {
			return
		}
		fallthrough
	case 62:
		seq.Perform(convert(62))
		if end == 63 {
			return
		}
		fallthrough
	case 63:
		seq.Perform(convert(63))
		if end == 64 {
			return
		}
		fallthrough
	case 64:
		seq.Perform(convert(64))
		if end == 65 {
			return
		}
		fallthrough
	case 65:
		seq.Perform(convert(65))
		if end == 66 {
			return
		}
		fallthrough
	case 66:
		seq.Perform(convert(66))
		if end == 67 {
			return
		}
		fallthrough
	case 67:
		seq.Perform(convert(67))
		if end == 68 {
			return
		}
		fallthrough
	case 68:
		seq.Perform(convert(68))
		if end == 69 {
			return
		}
		fallthrough
	case 69:
		seq.Perform(convert(69))
		if end == 70 {
			return
		}
		fallthrough
	case 70:
		seq.Perform(convert(70))
		if end == 71 {
			return
		}
		fallthrough
	case 71:
		seq.Perform(convert(71))
		if end == 72 {
			return
		}
		fallthrough
	case 72:
		seq.Perform(convert(72))
		if end == 73 {
			return
		}
		fallthrough
	case 73:
		seq.Perform(convert(73))
		if end == 74 {
			return
		}
		fallthrough
	case 74:
		seq.Perform(convert(74))
		if end == 75 {
			return
		}
		fallthrough
	case 75:
		seq.Perform(convert(75))
		if end == 76 {
			return
		}
		fallthrough
	case 76:
		seq.Perform(convert(76))
		if end == 77 {
			return
		}
		fallthrough
	case 77:
		seq.Perform(convert(77))
		if end == 78 {
			return
		}
		fallthrough
	case 78:
		seq.Perform(convert(78))
		if end == 79 {
			return
		}
		fallthrough
	case 79:
		seq.Perform(convert(79))
		if end == 80 {
			return
		}
		fallthrough
	case 80:
		seq.Perform(convert(80))
		if end == 81 {
			return
		}
		fallthrough
	case 81:
		seq.Perform(convert(81))
		if end == 82 {
			return
		}
		fallthrough
	case 82:
		seq.Perform(convert(82))
		if end == 83 {
			return
		}
		fallthrough
	case 83:
		seq.Perform(convert(83))
		if end == 84 {
			return
		}
		fallthrough
	case 84:
		seq.Perform(convert(84))
		if end == 85 {
			return
		}
		fallthrough
	case 85:
		seq.Perform(convert(85))
		if end == 86 {
			return
		}
		fallthrough
	case 86:
		seq.Perform(convert(86))
		if end == 87 {
			return
		}
		fallthrough
	case 87:
		seq.Perform(convert(87))
		if end == 88 {
			return
		}
		fallthrough
	case 88:
		seq.Perform(convert(88))
		if end == 89 {
			return
		}
		fallthrough
	case 89:
		seq.Perform(convert(89))
		if end == 90 {
			return
		}
		fallthrough
	case 90:
		seq.Perform(convert(90))
		if end == 91 {
			return
		}
		fallthrough
	case 91:
		seq.Perform(convert(91))
		if end == 92 {
			return
		}
		fallthrough
	case 92:
		seq.Perform(convert(92))
		if end == 93 {
			return
		}
		fallthrough
	case 93:
		seq.Perform(convert(93))
		if end == 94 {
			return
		}
		fallthrough
	case 94:
		seq.Perform(convert(94))
		if end == 95 {
			return
		}
		fallthrough
	case 95:
		seq.Perform(convert(95))
		if end == 96 {
			return
		}
		fallthrough
	case 96:
		seq.Perform(convert(96))
		if end == 97 {
			return
		}
		fallthrough
	case 97:
		seq.Perform(convert(97))
		if end == 98 {
			return
		}
		fallthrough
	case 98:
		seq.Perform(convert(98))
		if end == 99 {
			return
		}
		fallthrough
	case 99:
		seq.Perform(convert(99))
		if end == 100 {
			return
		}
		fallthrough
	case 100:
		seq.Perform(convert(100))
		if end == 101 {
			return
		}
		fallthrough
	case 101:
		seq.Perform(convert(101))
		if end == 102 {
			return
		}
		fallthrough
	case 102:
		seq.Perform(convert(102))
		if end == 103 {
			return
		}
		fallthrough
	case 103:
		seq.Perform(convert(103))
		if end == 104 {
			return
		}
		fallthrough
	case 104:
		seq.Perform(convert(104))
		if end == 105 {
			return
		}
		fallthrough
	case 105:
		seq.Perform(convert(105))
		if end == 106 {
			return
		}
		fallthrough
	case 106:
		seq.Perform(convert(106))
		if end == 107 {
			return
		}
		fallthrough
	case 107:
		seq.Perform(convert(107))
		if end == 108 {
			return
		}
		fallthrough
	case 108:
		seq.Perform(convert(108))
		if end == 109 {
			return
		}
		fallthrough
	case 109:
		seq.Perform(convert(109))
		if end == 110 {
			return
		}
		fallthrough
	case 110:
		seq.Perform(convert(110))
		if end == 111 {
			return
		}
		fallthrough
	case 111:
		seq.Perform(convert(111))
		if end == 112 {
			return
		}
		fallthrough
	case 112:
		seq.Perform(convert(112))
		if end == 113 {
			return
		}
		fallthrough
	case 113:
		seq.Perform(convert(113))
		if end == 114 {
			return
		}
		fallthrough
	case 114:
		seq.Perform(convert(114))
		if end == 115 {
			return
		}
		fallthrough
	case 115:
		seq.Perform(convert(115))
		if end == 116 {
			return
		}
		fallthrough
	case 116:
		seq.Perform(convert(116))
		if end == 117 {
			return
		}
		fallthrough
	case 117:
		seq.Perform(convert(117))
		if end == 118 {
			return
		}
		fallthrough
	case 118:
		seq.Perform(convert(118))
		if end == 119 {
			return
		}
		fallthrough
	case 119:
		seq.Perform(convert(119))
		if end == 120 {
			return
		}
		fallthrough
	case 120:
		seq.Perform(convert(120))
		if end == 121 {
			return
		}
		fallthrough
	case 121:
		seq.Perform(convert(121))
		if end == 122 {
			return
		}
		fallthrough
	case 122:
		seq.Perform(convert(122))
		if end == 123 {
			return
		}
		fallthrough
	case 123:
		seq.Perform(convert(123))
		if end == 124 {
			return
		}
		fallthrough
	case 124:
		seq.Perform(convert(124))
		if end == 125 {
			return
		}
		fallthrough
	case 125:
		seq.Perform(convert(125))
		if end == 126 {
			return
		}
		fallthrough
	case 126:
		seq.Perform(convert(126))
		if end == 127 {
			return
		}
		fallthrough
	case 127:
		seq.Perform(convert(127))
		if end == 128 {
			return
		}
		fallthrough
	case 128:
		seq.Perform(convert(128))
		if end == 129 {
			return
		}
		fallthrough
	case 129:
		seq.Perform(convert(129))
		if end == 130 {
			return
		}
		fallthrough
	case 130:
		seq.Perform(convert(130))
		if end == 131 {
			return
		}
		fallthrough
	case 131:
		seq.Perform(convert(131))
		if end == 132 {
			return
		}
		fallthrough
	case 132:
		seq.Perform(convert(132))
		if end == 133 {
			return
		}
		fallthrough
	case 133:
		seq.Perform(convert(133))
		if end == 134 {
			return
		}
		fallthrough
	case 134:
		seq.Perform(convert(134))
		if end == 135 {
			return
		}
		fallthrough
	case 135:
		seq.Perform(convert(135))
		if end == 136 {
			return
		}
		fallthrough
	case 136:
		seq.Perform(convert(136))
		if end == 137 {
			return
		}
		fallthrough
	case 137:
		seq.Perform(convert(137))
		if end == 138 {
			return
		}
		fallthrough
	case 138:
		seq.Perform(convert(138))
		if end == 139 {
			return
		}
		fallthrough
	case 139:
		seq.Perform(convert(139))
		if end == 140 {
			return
		}
		fallthrough
	case 140:
		seq.Perform(convert(140))
		if end == 141 {
			return
		}
		fallthrough
	case 141:
		seq.Perform(convert(141))
		if end == 142 {
			return
		}
		fallthrough
	case 142:
		seq.Perform(convert(142))
		if end == 143 {
			return
		}
		fallthrough
	case 143:
		seq.Perform(convert(143))
		if end == 144 {
			return
		}
		fallthrough
	case 144:
		seq.Perform(convert(144))
		if end == 145 {
			return
		}
		fallthrough
	case 145:
		seq.Perform(convert(145))
		if end == 146 {
			return
		}
		fallthrough
	case 146:
		seq.Perform(convert(146))
		if end == 147 {
			return
		}
		fallthrough
	case 147:
		seq.Perform(convert(147))
		if end == 148 {
			return
		}
		fallthrough
	case 148:
		seq.Perform(convert(148))
		if end == 149 {
			return
		}
		fallthrough
	case 149:
		seq.Perform(convert(149))
		if end == 150 {
			return
		}
		fallthrough
	case 150:
		seq.Perform(convert(150))
		if end == 151 {
			return
		}
		fallthrough
	case 151:
		seq.Perform(convert(151))
		if end == 152 {
			return
		}
		fallthrough
	case 152:
		seq.Perform(convert(152))
		if end == 153 {
			return
		}
		fallthrough
	case 153:
		seq.Perform(convert(153))
		if end == 154 {
			return
		}
		fallthrough
	case 154:
		seq.Perform(convert(154))
		if end == 155 {
			return
		}
		fallthrough
	case 155:
		seq.Perform(convert(155))
		if end == 156 {
			return
		}
		fallthrough
	case 156:
		seq.Perform(convert(156))
		if end == 157 {
			return
		}
		fallthrough
	case 157:
		seq.Perform(convert(157))
		if end == 158 {
			return
		}
		fallthrough
	case 158:
		seq.Perform(convert(158))
		if end == 159 {
			return
		}
		fallthrough
	case 159:
		seq.Perform(convert(159))
		if end == 160 {
			return
		}
		fallthrough
	case 160:
		seq.Perform(convert(160))
		if end == 161 {
			return
		}
		fallthrough
	case 161:
		seq.Perform(convert(161))
		if end == 162 {
			return
		}
		fallthrough
	case 162:
		seq.Perform(convert(162))
		if end == 163 {
			return
		}
		fallthrough
	case 163:
		seq.Perform(convert(163))
		if end == 164 {
			return
		}
		fallthrough
	case 164:
		seq.Perform(convert(164))
		if end == 165 {
			return
		}
		fallthrough
	case 165:
		seq.Perform(convert(165))
		if end == 166 {
			return
		}
		fallthrough
	case 166:
		seq.Perform(convert(166))
		if end == 167 {
			return
		}
		fallthrough
	case 167:
		seq.Perform(convert(167))
		if end == 168 {
			return
		}
		fallthrough
	case 168:
		seq.Perform(convert(168))
		if end == 169 {
			return
		}
		fallthrough
	case 169:
		seq.Perform(convert(169))
		if end == 170 {
			return
		}
		fallthrough
	case 170:
		seq.Perform(convert(170))
		if end == 171 {
			return
		}
		fallthrough
	case 171:
		seq.Perform(convert(171))
		if end == 172 {
			return
		}
		fallthrough
	case 172:
		seq.Perform(convert(172))
		if end == 173 {
			return
		}
		fallthrough
	case 173:
		seq.Perform(convert(173))
		if end == 174 {
			return
		}
		fallthrough
	case 174:
		seq.Perform(convert(174))
		if end == 175 {
			return
		}
		fallthrough
	case 175:
		seq.Perform(convert(175))
		if end == 176 {
			return
		}
		fallthrough
	case 176:
		seq.Perform(convert(176))
		if end == 177 {
			return
		}
		fallthrough
	case 177:
		seq.Perform(convert(177))
		if end == 178 {
			return
		}
		fallthrough
	case 178:
		seq.Perform(convert(178))
		if end == 179 {
			return
		}
		fallthrough
	case 179:
		seq.Perform(convert(179))
		if end == 180 {
			return
		}
		fallthrough
	case 180:
		seq.Perform(convert(180))
		if end == 181 {
			return
		}
		fallthrough
	case 181:
		seq.Perform(convert(181))
		if end == 182 {
			return
		}
		fallthrough
	case 182:
		seq.Perform(convert(182))
		if end == 183 {
			return
		}
		fallthrough
	case 183:
		seq.Perform(convert(183))
		if end == 184 {
			return
		}
		fallthrough
	case 184:
		seq.Perform(convert(184))
		if end == 185 {
			return
		}
		fallthrough
	case 185:
		seq.Perform(convert(185))
		if end == 186 {
			return
		}
		fallthrough
	case 186:
		seq.Perform(convert(186))
		if end == 187 {
			return
		}
		fallthrough
	case 187:
		seq.Perform(convert(187))
		if end == 188 {
			return
		}
		fallthrough
	case 188:
		seq.Perform(convert(188))
		if end == 189 {
			return
		}
		fallthrough
	case 189:
		seq.Perform(convert(189))
		if end == 190 {
			return
		}
		fallthrough
	case 190:
		seq.Perform(convert(190))
		if end == 191 {
			return
		}
		fallthrough
	case 191:
		seq.Perform(convert(191))
		if end == 192 {
			return
		}
		fallthrough
	case 192:
		seq.Perform(convert(192))
		if end == 193 {
			return
		}
		fallthrough
	case 193:
		seq.Perform(convert(193))
		if end == 194 {
			return
		}
		fallthrough
	case 194:
		seq.Perform(convert(194))
		if end == 195 {
			return
		}
		fallthrough
	case 195:
		seq.Perform(convert(195))
		if end == 196 {
			return
		}
		fallthrough
	case 196:
		seq.Perform(convert(196))
		if end == 197 {
			return
		}
		fallthrough
	case 197:
		seq.Perform(convert(197))
		if end == 198 {
			return
		}
		fallthrough
	case 198:
		seq.Perform(convert(198))
		if end == 199 {
			return
		}
		fallthrough
	case 199:
		seq.Perform(convert(199))
		if end == 200 {
			return
		}
		fallthrough
	case 200:
		seq.Perform(convert(200))
		if end == 201 {
			return
		}
		fallthrough
	case 201:
		seq.Perform(convert(201))
		if end == 202 {
			return
		}
		fallthrough
	case 202:
		seq.Perform(convert(202))
		if end == 203 {
			return
		}
		fallthrough
	case 203:
		seq.Perform(convert(203))
		if end == 204 {
			return
		}
		fallthrough
	case 204:
		seq.Perform(convert(204))
		if end == 205 {
			return
		}
		fallthrough
	case 205:
		seq.Perform(convert(205))
		if end == 206 {
			return
		}
		fallthrough
	case 206:
		seq.Perform(convert(206))
		if end == 207 {
			return
		}
		fallthrough
	case 207:
		seq.Perform(convert(207))
		if end == 208 {
			return
		}
		fallthrough
	case 208:
		seq.Perform(convert(208))
		if end == 209 {
			return
		}
		fallthrough
	case 209:
		seq.Perform(convert(209))
		if end == 210 {
			return
		}
		fallthrough
	case 210:
		seq.Perform(convert(210))
		if end == 211 {
			return
		}
		fallthrough
	case 211:
		seq.Perform(convert(211))
		if end == 212 {
			return
		}
		fallthrough
	case 212:
		seq.Perform(convert(212))
		if end == 213 {
			return
		}
		fallthrough
	case 213:
		seq.Perform(convert(213))
		if end == 214 {
			return
		}
		fallthrough
	case 214:
		seq.Perform(convert(214))
		if end == 215 {
			return
		}
		fallthrough
	case 215:
		seq.Perform(convert(215))
		if end == 216 {
			return
		}
		fallthrough
	case 216:
		seq.Perform(convert(216))
		if end == 217 {
			return
		}
		fallthrough
	case 217:
		seq.Perform(convert(217))
		if end == 218 {
			return
		}
		fallthrough
	case 218:
		seq.Perform(convert(218))
		if end == 219 {
			return
		}
		fallthrough
	case 219:
		seq.Perform(convert(219))
		if end == 220 {
			return
		}
		fallthrough
	case 220:
		seq.Perform(convert(220))
		if end == 221 {
			return
		}
		fallthrough
	case 221:
		seq.Perform(convert(221))
		if end == 222 {
			return
		}
		fallthrough
	case 222:
		seq.Perform(convert(222))
		if end == 223 {
			return
		}
		fallthrough
	case 223:
		seq.Perform(convert(223))
		if end == 224 {
			return
		}
		fallthrough
	case 224:
		seq.Perform(convert(224))
		if end == 225 {
			return
		}
		fallthrough
	case 225:
		seq.Perform(convert(225))
		if end == 226 {
			return
		}
		fallthrough
	case 226:
		seq.Perform(convert(226))
		if end == 227 {
			return
		}
		fallthrough
	case 227:
		seq.Perform(convert(227))
		if end == 228 {
			return
		}
		fallthrough
	case 228:
		seq.Perform(convert(228))
		if end == 229 {
			return
		}
		fallthrough
	case 229:
		seq.Perform(convert(229))
		if end == 230 {
			return
		}
		fallthrough
	case 230:
		seq.Perform(convert(230))
		if end == 231 {
			return
		}
		fallthrough
	case 231:
		seq.Perform(convert(231))
		if end == 232 {
			return
		}
		fallthrough
	case 232:
		seq.Perform(convert(232))
		if end == 233 {
			return
		}
		fallthrough
	case 233:
		seq.Perform(convert(233))
		if end == 234 {
			return
		}
		fallthrough
	case 234:
		seq.Perform(convert(234))
		if end == 235 {
			return
		}
		fallthrough
	case 235:
		seq.Perform(convert(235))
		if end == 236 {
			return
		}
		fallthrough
	case 236:
		seq.Perform(convert(236))
		if end == 237 {
			return
		}
		fallthrough
	case 237:
		seq.Perform(convert(237))
		if end == 238 {
			return
		}
		fallthrough
	case 238:
		seq.Perform(convert(238))
		if end == 239 {
			return
		}
		fallthrough
	case 239:
		seq.Perform(convert(239))
		if end == 240 {
			return
		}
		fallthrough
	case 240:
		seq.Perform(convert(240))
		if end == 241 {
			return
		}
		fallthrough
	case 241:
		seq.Perform(convert(241))
		if end == 242 {
			return
		}
		fallthrough
	case 242:
		seq.Perform(convert(242))
		if end == 243 {
			return
		}
		fallthrough
	case 243:
		seq.Perform(convert(243))
		if end == 244 {
			return
		}
		fallthrough
	case 244:
		seq.Perform(convert(244))
		if end == 245 {
			return
		}
		fallthrough
	case 245:
		seq.Perform(convert(245))
		if end == 246 {
			return
		}
		fallthrough
	case 246:
		seq.Perform(convert(246))
		if end == 247 {
			return
		}
		fallthrough
	case 247:
		seq.Perform(convert(247))
		if end == 248 {
			return
		}
		fallthrough
	case 248:
		seq.Perform(convert(248))
		if end == 249 {
			return
		}
		fallthrough
	case 249:
		seq.Perform(convert(249))
		if end == 250 {
			return
		}
		fallthrough
	case 250:
		seq.Perform(convert(250))
		if end == 251 {
			return
		}
		fallthrough
	case 251:
		seq.Perform(convert(251))
		if end == 252 {
			return
		}
		fallthrough
	case 252:
		seq.Perform(convert(252))
		if end == 253 {
			return
		}
		fallthrough
	case 253:
		seq.Perform(convert(253))
		if end == 254 {
			return
		}
		fallthrough
	case 254:
		seq.Perform(convert(254))
		if end == 255 {
			return
		}
		fallthrough
	case 255:
		seq.Perform(convert(255))
	}
}
