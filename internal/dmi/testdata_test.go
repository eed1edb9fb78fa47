package dmi

const decoderReport = `# dmidecode 3.3
Getting SMBIOS data from sysfs.
SMBIOS 3.1.1 present.
Table at 0x000E0000.

Handle 0x0000, DMI type 0, 24 bytes
BIOS Information
	Vendor: Dell Inc.
	Version: 1.13.1
	Release Date: 03/25/2019
	ROM Size: 16 MB
	Characteristics:
		PCI is supported
		BIOS is upgradeable
	BIOS Revision: 1.13

Handle 0x0001, DMI type 1, 27 bytes
System Information
	Manufacturer: Dell Inc.
	Product Name: OptiPlex 7050
	Version: Not Specified
	Serial Number: 5CZ3PK2
	UUID: 4c4c4544-0043-5a10-8033-b5c04f504b32
	Wake-up Type: Power Switch
	SKU Number: 07A1
	Family: OptiPlex

Handle 0x0002, DMI type 2, 15 bytes
Base Board Information
	Manufacturer: Dell Inc.
	Product Name: 0Y7WYT
	Version: A00
	Serial Number: /5CZ3PK2/CN1296372K0123/
	Asset Tag: Not Specified

Handle 0x0003, DMI type 3, 22 bytes
Chassis Information
	Manufacturer: Dell Inc.
	Type: Mini Tower
	Lock: Not Present
	Version: Not Specified
	Serial Number: 5CZ3PK2
	Asset Tag: IT-0042

Handle 0x003E, DMI type 16, 23 bytes
Physical Memory Array
	Location: System Board Or Motherboard
	Use: System Memory
	Error Correction Type: None
	Maximum Capacity: 64 GB
	Number Of Devices: 2

Handle 0x003F, DMI type 17, 40 bytes
Memory Device
	Array Handle: 0x003E
	Size: 8 GB
	Form Factor: DIMM
	Locator: DIMM1
	Bank Locator: Not Specified
	Type: DDR4
	Speed: 2400 MT/s
	Manufacturer: SK Hynix
	Serial Number: 31C3A0A1
	Asset Tag: 01172000
	Part Number: HMA81GU6AFR8N-UH

Handle 0x0040, DMI type 17, 40 bytes
Memory Device
	Array Handle: 0x003E
	Size: No Module Installed
	Form Factor: DIMM
	Locator: DIMM2
	Bank Locator: Not Specified
	Type: Unknown
	Speed: Unknown
	Manufacturer: Not Specified
	Serial Number: Not Specified
	Asset Tag: Not Specified
	Part Number: Not Specified

Handle 0x0041, DMI type 127, 4 bytes
End Of Table
`

const listerReport = `workstation
    description: Desktop Computer
    product: OptiPlex 7050 (07A1)
    vendor: Dell Inc.
    serial: 5CZ3PK2
    width: 64 bits
    capabilities: smbios-3.1.1 dmi-3.1.1 smp vsyscall32
    configuration: boot=normal chassis=desktop family=OptiPlex sku=07A1 uuid=4C4C4544-0043-5A10-8033-B5C04F504B32
  *-core
       description: Motherboard
       product: 0Y7WYT
       vendor: Dell Inc.
       physical id: 0
       version: A00
       serial: /5CZ3PK2/CN1296372K0123/
     *-firmware
          description: BIOS
          vendor: Dell Inc.
          physical id: 0
          version: 1.13.1
          date: 03/25/2019
          size: 64KiB
     *-memory
          description: System Memory
          physical id: 3e
          slot: System board or motherboard
          size: 8GiB
        *-bank:0
             description: DIMM DDR4 Synchronous 2400 MHz (0.4 ns)
             product: HMA81GU6AFR8N-UH
             vendor: SK Hynix
             physical id: 0
             serial: 31C3A0A1
             slot: DIMM1
             size: 8GiB
             width: 64 bits
             clock: 2400MHz (0.4ns)
        *-bank:1
             description: [empty]
             physical id: 1
             slot: DIMM2
     *-pci
          description: Host bridge
          product: Xeon E3-1200 v6/7th Gen Core Processor Host Bridge/DRAM Registers
          vendor: Intel Corporation
        *-display
             description: VGA compatible controller
             product: HD Graphics 630
             vendor: Intel Corporation
             physical id: 2
             bus info: pci@0000:00:02.0
             configuration: driver=i915 latency=0 resolution=1920,1080
             resources: irq:130 memory:f6000000-f6ffffff memory:e0000000-efffffff ioport:f000(size=64)
        *-display UNCLAIMED
             description: VGA compatible controller
             product: GK208B [GeForce GT 710]
             vendor: NVIDIA Corporation
             resources: memory:f5000000-f5ffffff memory:d0000000-dfffffff
`
