// Package format houses low-level decoders for APFS catalog records. The
// goal is to keep the parsing focused, allocation-free where possible, and
// independent from the checker so higher-level packages can reason about
// the data in a more ergonomic form.
package format

// Catalog object identifiers below MinUserIno are reserved for the
// filesystem itself.
const (
	// InvalidIno never names a real object; it only appears in corrupt
	// records.
	InvalidIno = 0

	// RootDirParent is the sentinel parent id of the three virtual
	// directories. It is not itself a valid inode number.
	RootDirParent = 1

	// RootDirIno, PrivDirIno and SnapDirIno are the virtual directories
	// at the top of every volume: the root, the private area, and the
	// snapshot area.
	RootDirIno = 2
	PrivDirIno = 3
	SnapDirIno = 6

	// MinUserIno is the first inode number available to ordinary files.
	MinUserIno = 16
)

// File mode type bits, as stored in the low 16 bits of an inode's mode.
const (
	ModeTypeMask = 0xF000

	ModeFIFO      = 0x1000
	ModeCharDev   = 0x2000
	ModeDirectory = 0x4000
	ModeBlockDev  = 0x6000
	ModeRegular   = 0x8000
	ModeSymlink   = 0xA000
	ModeSocket    = 0xC000
)

// Inode value field offsets. The fixed header is followed by an optional
// extended-field blob.
//
//	Offset  Size  Field
//	0x00    8     Parent object id
//	0x08    8     Private id (data stream reference)
//	0x10    8     Create time (ns since epoch)
//	0x18    8     Modification time
//	0x20    8     Change time
//	0x28    8     Access time
//	0x30    8     Internal flags
//	0x38    4     Link count / child count (union; signed)
//	0x3C    4     Default protection class
//	0x40    4     Write generation counter
//	0x44    4     BSD flags
//	0x48    4     Owner uid
//	0x4C    4     Group gid
//	0x50    2     Mode (type + permission bits)
//	0x52    2     Padding, must be zero
//	0x54    8     Padding, must be zero
//	0x5C    n     Extended fields (optional)
const (
	InoParentIDOffset   = 0x00
	InoPrivateIDOffset  = 0x08
	InoCreateTimeOffset = 0x10
	InoModTimeOffset    = 0x18
	InoChangeTimeOffset = 0x20
	InoAccessTimeOffset = 0x28
	InoIntFlagsOffset   = 0x30
	InoNlinkOffset      = 0x38
	InoProtClassOffset  = 0x3C
	InoWriteGenOffset   = 0x40
	InoBSDFlagsOffset   = 0x44
	InoOwnerOffset      = 0x48
	InoGroupOffset      = 0x4C
	InoModeOffset       = 0x50
	InoPad1Offset       = 0x52
	InoPad2Offset       = 0x54

	// InoValSize is the size of the fixed inode value header.
	InoValSize = 0x5C
)

// Extended-field blob layout. The blob header is followed by an array of
// descriptors and then the back-to-back field payloads, each padded with
// zeroes to an 8-byte boundary.
//
//	Offset  Size  Field
//	0x00    2     Number of extended fields
//	0x02    2     Used payload bytes (descriptor array excluded)
//	0x04    4*n   Field descriptors
//	...     ...   Field payloads
const (
	XFBlobNumExtsOffset  = 0x00
	XFBlobUsedDataOffset = 0x02
	XFBlobHeaderSize     = 0x04

	// Descriptor layout: type tag, flags, declared payload size.
	XFieldTypeOffset  = 0x00
	XFieldFlagsOffset = 0x01
	XFieldSizeOffset  = 0x02
	XFieldDescSize    = 0x04

	// XFieldAlignment is the boundary each payload is padded to.
	XFieldAlignment = 8
)

// Extended-field type tags.
const (
	XTypeSnapXID      = 1
	XTypeDeltaTreeOID = 2
	XTypeDocumentID   = 3
	XTypeName         = 4
	XTypePrevFsize    = 5
	XTypeReserved6    = 6
	XTypeFinderInfo   = 7
	XTypeDstream      = 8
	XTypeReserved9    = 9
	XTypeDirStatsKey  = 10
	XTypeFSUUID       = 11
	XTypeReserved12   = 12
	XTypeSparseBytes  = 13
	XTypeRdev         = 14
)

// Fixed payload sizes for the structured extended fields.
const (
	// UUIDSize is the payload size of the filesystem UUID field.
	UUIDSize = 16

	// DstreamSize is the payload size of a dstream field:
	//
	//	0x00  8  Size in bytes
	//	0x08  8  Allocated size
	//	0x10  8  Default crypto id
	//	0x18  8  Total bytes written
	//	0x20  8  Total bytes read
	DstreamSize       = 0x28
	DstreamSizeOffset = 0x00

	// DirStatsSize is the payload size of a directory statistics field:
	//
	//	0x00  8  Number of children
	//	0x08  8  Total size
	//	0x10  8  Chained key
	//	0x18  8  Generation count
	DirStatsSize = 0x20
)

// Catalog key header. Every record key begins with a 64-bit word packing
// the object id into the low 60 bits and the record type into the top 4.
const (
	KeyHeaderSize = 8

	ObjIDMask    = 0x0FFFFFFFFFFFFFFF
	ObjTypeShift = 60
)

// Catalog record types dispatched by the checker.
const (
	RecTypeInode      = 3
	RecTypeFileExtent = 8
	RecTypeDirRec     = 9
)

// Directory entry value layout.
//
//	Offset  Size  Field
//	0x00    8     Child object id
//	0x08    8     Date added
//	0x10    2     Flags (low 4 bits: entry file type)
const (
	DrecChildIDOffset   = 0x00
	DrecDateAddedOffset = 0x08
	DrecFlagsOffset     = 0x10
	DrecValSize         = 0x12

	DrecTypeMask = 0x000F
)

// Directory entry file types, matching the dirent d_type values. Shifted
// left by DrecTypeModeShift they line up with the mode type bits.
const (
	DrecTypeModeShift = 12

	DTFIFO    = 1
	DTCharDev = 2
	DTDir     = 4
	DTBlkDev  = 6
	DTRegular = 8
	DTSymlink = 10
	DTSocket  = 12
)

// File extent value layout.
//
//	Offset  Size  Field
//	0x00    8     Length in bytes (low 56 bits) and flags (top 8)
//	0x08    8     Physical block number
//	0x10    8     Crypto id
const (
	ExtentLenOffset      = 0x00
	ExtentPhysBlkOffset  = 0x08
	ExtentCryptoIDOffset = 0x10
	ExtentValSize        = 0x18

	ExtentLenMask = 0x00FFFFFFFFFFFFFF
)
