// Package nbt reads and writes the binary NBT format.
//
// A document is one named root tag, optionally wrapped in gzip. The format
// carries no byte order marker: Java edition files are big-endian and
// Bedrock edition files are little-endian. Decode therefore applies a retry
// policy (see Resolve): it decodes with the assumed byte order and retries
// once with the opposite order when the first attempt either fails
// structurally or yields an empty root compound.
//
// # Decoding
//
//	doc, err := nbt.DecodeFile("level.dat")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.Name, doc.Endianness, doc.Compression)
//
// # Encoding
//
//	doc := &nbt.Document{
//	    Name:        "",
//	    Root:        root,
//	    Endianness:  format.LittleEndian,
//	    Compression: format.CompressionNone,
//	}
//	err := nbt.WriteFile("house.mcstructure", doc)
//
// Library calls never log unless a logger is supplied with WithLogger.
package nbt
