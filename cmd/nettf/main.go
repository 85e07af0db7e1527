/*
nettf - LAN file and directory transfer utility.

Command-line front end: a three-way discover/receive/send dispatch, each
backed by its own flag.FlagSet, with usage text spelling out worked
examples.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nettf/nettf/discovery"
	"github.com/nettf/nettf/frame"
	"github.com/nettf/nettf/fsys"
	"github.com/nettf/nettf/internal/humanize"
	"github.com/nettf/nettf/internal/logx"
	"github.com/nettf/nettf/shutdown"
)

const version = "v1.0.0"

func usage() {
	fmt.Printf("Usage:\n")
	fmt.Printf("  nettf discover [--timeout <ms>]\n")
	fmt.Printf("  nettf receive\n")
	fmt.Printf("  nettf send <target_ip> <file_or_dir_path> [target_subdir]\n")
	fmt.Printf("\nExamples:\n")
	fmt.Printf("  nettf discover\n")
	fmt.Printf("  nettf receive\n")
	fmt.Printf("  nettf send 192.168.1.50 ./report.pdf\n")
	fmt.Printf("  nettf send 192.168.1.50 ./report.pdf downloads\n")
	fmt.Printf("  nettf send 192.168.1.50 ./photos/\n")
	fmt.Printf("\nAll transfers use port %d by default.\n", discovery.DefaultPort)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := logx.Default()

	var err error
	switch os.Args[1] {
	case "discover":
		err = runDiscover(os.Args[2:], logger)
	case "receive":
		err = runReceive(os.Args[2:], logger)
	case "send":
		err = runSend(os.Args[2:], logger)
	case "-v", "--version":
		fmt.Printf("nettf %s\n", version)
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runDiscover(args []string, logger *logx.Logger) error {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	timeoutMs := fs.Int("timeout", 1000, "timeout for network operations, in milliseconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *timeoutMs <= 0 {
		return fmt.Errorf("timeout must be a positive number")
	}

	logger.Infof("starting discovery sweep (timeout=%dms)", *timeoutMs)

	if local, err := discovery.LocalAddress(); err == nil {
		fmt.Printf("This host: %s\n\n", local)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	devices, err := discovery.Discover(ctx, discovery.DefaultPort, time.Duration(*timeoutMs)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	discovery.PrintTable(os.Stdout, devices)

	services := 0
	for _, d := range devices {
		if d.HasService {
			services++
		}
	}
	fmt.Printf("\nDiscovery complete. Found %d device(s), %d with NETTF running on port %d.\n",
		len(devices), services, discovery.DefaultPort)

	return nil
}

func runReceive(args []string, logger *logx.Logger) error {
	if len(args) != 0 {
		return fmt.Errorf("receive takes no arguments")
	}

	ctrl := shutdown.New()
	defer ctrl.Stop()

	listener, err := net.Listen("tcp4", fmt.Sprintf(":%d", discovery.DefaultPort))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", discovery.DefaultPort, err)
	}
	defer listener.Close()

	logger.Infof("listening on :%d", discovery.DefaultPort)

	for {
		if ctrl.Requested() == shutdown.Forced {
			return nil
		}

		conn, err := listener.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}

		handleConnection(conn, ctrl, logger)
	}
}

// handleConnection services exactly one frame, one connection at a time:
// NETTF's receiver never serves two transfers concurrently.
func handleConnection(conn net.Conn, ctrl *shutdown.Controller, logger *logx.Logger) {
	defer conn.Close()

	id := uuid.New().String()[:8]
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := discovery.SetNoDelay(tcpConn); err != nil {
			logger.Errorf("[%s] set TCP_NODELAY: %v", id, err)
		}
	}

	logger.Infof("[%s] connection from %s", id, conn.RemoteAddr())

	opts := frame.Options{Logger: logger, Shutdown: ctrl}
	start := time.Now()
	received, err := frame.Receive(conn, opts)
	if err != nil {
		logger.Errorf("[%s] transfer failed: %v", id, err)
		return
	}

	elapsed := time.Since(start)
	summary := fmt.Sprintf("[%s] received %s in %s (%s)", id,
		humanize.Bytes(received), humanize.Duration(int(elapsed.Seconds())), speedOf(received, elapsed))
	fmt.Println(discovery.StyleSummary(summary))
}

// speedOf reports a transfer's throughput as a humanized rate, guarding
// against a division by zero on a near-instant transfer.
func speedOf(bytes uint64, elapsed time.Duration) string {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return humanize.Speed(float64(bytes))
	}
	return humanize.Speed(float64(bytes) / seconds)
}

func runSend(args []string, logger *logx.Logger) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("send requires <target_ip> <path> [target_subdir]")
	}
	targetIP := args[0]
	path := args[1]
	var targetDir string
	if len(args) == 3 {
		targetDir = args[2]
	}

	if net.ParseIP(targetIP) == nil {
		return fmt.Errorf("invalid IPv4 address %q", targetIP)
	}

	ctrl := shutdown.New()
	defer ctrl.Stop()

	addr := net.JoinHostPort(targetIP, strconv.Itoa(discovery.DefaultPort))
	conn, err := net.DialTimeout("tcp4", addr, 10*time.Second)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := discovery.SetNoDelay(tcpConn); err != nil {
			logger.Errorf("set TCP_NODELAY: %v", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	opts := frame.Options{Logger: logger, Shutdown: ctrl}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var size uint64
	if info.IsDir() {
		tree, err := fsys.WalkTree(absPath)
		if err != nil {
			return fmt.Errorf("walk %s: %w", absPath, err)
		}
		size = tree.TotalSize
	} else {
		size = uint64(info.Size())
	}

	start := time.Now()
	if info.IsDir() {
		err = frame.SendTree(conn, absPath, targetDir, opts)
	} else {
		err = frame.SendFile(conn, absPath, targetDir, opts)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	summary := fmt.Sprintf("sent %s in %s (%s)",
		humanize.Bytes(size), humanize.Duration(int(elapsed.Seconds())), speedOf(size, elapsed))
	fmt.Println(discovery.StyleSummary(summary))
	return nil
}
