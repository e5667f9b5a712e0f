package nes

// 64 sprites of 4 bytes each: Y, tile index, attributes, X.
const oamSize = 256

// objectAttributeMemory is only reachable through OAMADDR and OAMDATA;
// sprites are not rendered.
type objectAttributeMemory [oamSize]byte

func (oam *objectAttributeMemory) read(addr byte) byte {
	return oam[addr]
}

func (oam *objectAttributeMemory) write(addr byte, data byte) {
	oam[addr] = data
}

func (oam *objectAttributeMemory) clear() {
	*oam = objectAttributeMemory{}
}
