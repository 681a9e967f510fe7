// Package asmtest holds small ASM/FASTA fixtures shared by tests.
package asmtest

import (
	"os"
	"path/filepath"
	"testing"
)

// Assembly has two contigs: A (reads r1, r2; clear ranges [0,10) and
// [5,15)) and B (read r3, placed from a stone unitig).
const Assembly = `{MDI
ref:(lib1,1)
mea:3000.000
std:300.000
min:2000
max:4000
buc:3
his:
5
10
5
}
{AFG
acc:(r1,11)
mst:G
chi:0
cha:0
clr:0,10
}
{AFG
acc:(r2,12)
mst:G
chi:0
cha:0
clr:5,15
clv:0,20
clq:0,20
}
{AFG
acc:(r3,13)
mst:N
chi:0
cha:0
clr:2,10
}
{AMP
ref1:r1
ref2:r2
mst:G
}
{UTG
acc:(U1,21)
src:
.
mhp:0.000
cov:12.500
sta:U
len:16
cns:
AAAAC-CCCG
GGGCCC
.
qlt:
XXXXXXXXXX
XXXXXX
.
for:0
nfr:2
{MPS
typ:R
mid:r1
src:
.
pos:0,11
dln:1
del:
5
}
{MPS
typ:R
mid:r2
pos:14,3
dln:1
del:
3
}
}
{UTG
acc:(U2,22)
src:
.
cov:-2.000
sta:R
len:8
cns:
GTACGTAC
.
qlt:
XXXXXXXX
.
for:0
nfr:1
{MPS
typ:R
mid:r3
pos:0,8
dln:0
del:
}
}
{ULK
ut1:U1
ut2:U2
ori:N
ovt:N
ipc:0
gui:0
mea:500.000
std:50.000
num:1
sta:A
jls:
r1,r3,M
}
{CCO
acc:(A,31)
pla:P
len:16
cns:
AAAAC-CCCGGGGCCC
.
qlt:
XXXXXXXXXXXXXXXX
.
for:0
npc:2
nou:1
nvr:1
{VAR
pos:7,8
nrd:2
nca:2
anc:3
vid:1
pid:-1
nra:1/1
wgt:10/30
seq:C/G
rid:r1/r2/
}
{MPS
typ:R
mid:r1
pos:0,11
dln:1
del:
5
}
{MPS
typ:R
mid:r2
pos:14,3
dln:1
del:
3
}
{UPS
typ:U
lid:U1
pos:0,16
dln:0
del:
}
}
{CCO
acc:(B,32)
pla:P
len:8
cns:
GTACGTAC
.
qlt:
XXXXXXXX
.
for:0
npc:1
nou:1
nvr:0
{MPS
typ:R
mid:r3
pos:0,8
dln:0
del:
}
{UPS
typ:S
lid:U2
pos:0,8
dln:0
del:
}
}
{CLK
co1:A
co2:B
ori:A
ovt:O
ipc:0
gui:0
mea:800.000
std:80.000
num:2
sta:A
jls:
r1,r3,M
}
{SCF
acc:(S1,41)
noc:1
{CTP
ct1:A
ct2:B
mea:800.000
std:80.000
ori:A
}
}
{SCF
acc:(S2,42)
noc:0
{CTP
ct1:B
ct2:B
mea:0.000
std:0.000
ori:N
}
}
{SLK
sc1:S1
sc2:S2
ori:N
gui:0
mea:1000.000
std:100.000
num:1
jls:
r1,r3,M
}
`

// Reads are the full-length raw sequences of r1..r3 (r3 is wrapped).
const Reads = `>r1
AAAACCCCGGGGTTTTACGT
>r2 second read
TTTTGGGGCCCCAAAATGCA
>r3
ACGTACGT
ACGT
`

// Gapped read sequences the builders must produce.
var (
	WantR1 = "AAAAC-CCCGG" // [0,10), forward, gap before 5
	WantR2 = "TTT-GGGGCCC" // [5,15), reverse, gap before 3
	WantR3 = "GTACGTAC"    // [2,10), forward
)

// Write stores content under t.TempDir() and returns the path.
func Write(t testing.TB, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}
