package modules

import (
	"context"

	"genact/internal/session"
)

// Bootlog prints a kernel boot log with monotonically increasing
// timestamps.
type Bootlog struct{}

func (Bootlog) Name() string      { return "bootlog" }
func (Bootlog) Signature() string { return "dmesg -w" }

func (Bootlog) Run(ctx context.Context, s *session.Session) error {
	var ts float64
	n := s.Between(50, 200)
	burst := 0

	for i := 0; i < n; i++ {
		ts += float64(s.Between(1, 90000)) / 1e6
		if err := s.Printf("[%12.6f] %s", ts, session.Pick(s, bootMessages)); err != nil {
			return err
		}

		// Lines come in quick bursts separated by longer pauses.
		delay := s.Millis(1, 20)
		if burst == 0 {
			burst = s.Between(2, 15)
			delay = s.Millis(100, 800)
		}
		burst--

		if stop, err := pause(ctx, s, delay); stop {
			return err
		}
	}
	return nil
}

var bootMessages = []string{
	"Linux version 6.8.0-31-generic (buildd@lcy02-amd64-080) (x86_64-linux-gnu-gcc-13 (Ubuntu 13.2.0-23ubuntu4) 13.2.0)",
	"Command line: BOOT_IMAGE=/vmlinuz-6.8.0-31-generic root=UUID=3b1e0c4a ro quiet splash",
	"BIOS-provided physical RAM map:",
	"x86/fpu: Supporting XSAVE feature 0x001: 'x87 floating point registers'",
	"x86/fpu: Enabled xstate features 0x7, context size is 832 bytes, using 'standard' format.",
	"DMI: LENOVO 20XW00AAUS/20XW00AAUS, BIOS N32ET75W (1.51 ) 06/29/2023",
	"tsc: Detected 2803.200 MHz processor",
	"e820: update [mem 0x00000000-0x00000fff] usable ==> reserved",
	"ACPI: Early table checksum verification disabled",
	"Zone ranges:",
	"Memory: 16132212K/16669016K available (20480K kernel code, 4356K rwdata)",
	"SLUB: HWalign=64, Order=0-3, MinObjects=0, CPUs=8, Nodes=1",
	"rcu: Hierarchical RCU implementation.",
	"NR_IRQS: 524544, nr_irqs: 2048, preallocated irqs: 16",
	"Console: colour dummy device 80x25",
	"printk: console [tty0] enabled",
	"Calibrating delay loop (skipped), value calculated using timer frequency.. 5606.40 BogoMIPS",
	"pid_max: default: 32768 minimum: 301",
	"Mount-cache hash table entries: 32768 (order: 6, 262144 bytes, linear)",
	"smpboot: CPU0: 11th Gen Intel(R) Core(TM) i7-1165G7 @ 2.80GHz (family: 0x6, model: 0x8c, stepping: 0x1)",
	"Performance Events: PEBS fmt4+-baseline,  AnyThread deprecated, Icelake events, full-width counters",
	"smp: Brought up 1 node, 8 CPUs",
	"devtmpfs: initialized",
	"NET: Registered PF_NETLINK/PF_ROUTE protocol family",
	"PCI: Using configuration type 1 for base access",
	"iommu: Default domain type: Translated",
	"SCSI subsystem initialized",
	"usbcore: registered new interface driver usbfs",
	"clocksource: Switched to clocksource tsc-early",
	"NET: Registered PF_INET protocol family",
	"Unpacking initramfs...",
	"Freeing initrd memory: 68420K",
	"Key type asymmetric registered",
	"Serial: 8250/16550 driver, 32 ports, IRQ sharing enabled",
	"nvme nvme0: pci function 0000:04:00.0",
	"nvme nvme0: 8/0/0 default/read/poll queues",
	" nvme0n1: p1 p2 p3",
	"EXT4-fs (nvme0n1p3): mounted filesystem with ordered data mode. Quota mode: none.",
	"systemd[1]: Detected architecture x86-64.",
	"systemd[1]: Hostname set to <workstation>.",
	"i915 0000:00:02.0: [drm] Finished loading DMC firmware i915/tgl_dmc_ver2_12.bin (v2.12)",
	"iwlwifi 0000:00:14.3: loaded firmware version 83.e8f84e98.0 QuZ-a0-hr-b0-83.ucode op_mode iwlmvm",
	"Bluetooth: Core ver 2.22",
	"input: AT Translated Set 2 keyboard as /devices/platform/i8042/serio0/input/input3",
	"wlp0s20f3: authenticated",
	"IPv6: ADDRCONF(NETDEV_CHANGE): wlp0s20f3: link becomes ready",
}
