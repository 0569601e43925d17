// lorasim plays the radio side of the link.  It serves a TCP port
// the bridge daemon connects to with -port tcp:host:port, prints
// poll commands arriving from the bridge, and injects response
// lines through an interactive shell.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"
)

var (
	listenAddr = ":7700"

	commands = []*ishell.Cmd{
		&SendCmd,
		&JunkCmd,
		&FloodCmd,
		&StatusCmd,
	}
)

func init() {
	flag.StringVar(&listenAddr, "listen", listenAddr, "TCP listen address for the bridge link.")
}

const radioKey = "$radio"

// Radio holds the current bridge connection.  Only one bridge is
// served at a time; a new connection replaces the old one.
type Radio struct {
	lock sync.Mutex
	conn net.Conn
}

// RadioFrom gets Radio from ishell context.
func RadioFrom(c *ishell.Context) *Radio {
	return c.Get(radioKey).(*Radio)
}

// Serve accepts bridge connections.
func (r *Radio) Serve(ln net.Listener, sh *ishell.Shell) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			glog.Error(err)
			return
		}
		r.lock.Lock()
		if r.conn != nil {
			r.conn.Close()
		}
		r.conn = conn
		r.lock.Unlock()
		sh.Println("bridge connected:", conn.RemoteAddr())
		go r.printCommands(conn, sh)
	}
}

func (r *Radio) printCommands(conn net.Conn, sh *ishell.Shell) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		sh.Printf("<- %s\n", strings.TrimRight(scanner.Text(), "\r"))
	}
	r.lock.Lock()
	if r.conn == conn {
		r.conn = nil
	}
	r.lock.Unlock()
	sh.Println("bridge disconnected")
}

// Send writes raw bytes onto the link.
func (r *Radio) Send(data []byte) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.conn == nil {
		return fmt.Errorf("no bridge connected")
	}
	_, err := r.conn.Write(data)
	return err
}

// SendCmd sends a text line, CRLF terminated.
var SendCmd = ishell.Cmd{
	Name: "send",
	Help: "send LINE, transmit a response line to the bridge",
	Func: func(c *ishell.Context) {
		line := strings.Join(c.Args, " ")
		if err := RadioFrom(c).Send([]byte(line + "\r\n")); err != nil {
			c.Err(err)
		}
	},
}

// JunkCmd sends a line that is not valid text.
var JunkCmd = ishell.Cmd{
	Name: "junk",
	Help: "transmit an undecodable line",
	Func: func(c *ishell.Context) {
		if err := RadioFrom(c).Send([]byte{0xff, 0xfe, 0x01, '\n'}); err != nil {
			c.Err(err)
		}
	},
}

// FloodCmd sends an oversized line to exercise the receive buffer
// overflow path.
var FloodCmd = ishell.Cmd{
	Name: "flood",
	Help: "flood N, transmit one N-byte line",
	Func: func(c *ishell.Context) {
		n := 256
		if len(c.Args) > 0 {
			var err error
			if n, err = strconv.Atoi(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
		}
		data := append([]byte(strings.Repeat("x", n)), '\n')
		if err := RadioFrom(c).Send(data); err != nil {
			c.Err(err)
		}
	},
}

// StatusCmd shows the link state.
var StatusCmd = ishell.Cmd{
	Name: "status",
	Help: "show the bridge link state",
	Func: func(c *ishell.Context) {
		r := RadioFrom(c)
		r.lock.Lock()
		conn := r.conn
		r.lock.Unlock()
		if conn == nil {
			c.Println("no bridge connected")
			return
		}
		c.Println("bridge:", conn.RemoteAddr())
	},
}

func main() {
	flag.Parse()

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		glog.Exit(err)
	}

	sh := ishell.New()
	sh.SetPrompt("[radio] > ")
	radio := &Radio{}
	sh.Set(radioKey, radio)
	for _, cmd := range commands {
		sh.AddCmd(cmd)
	}
	go radio.Serve(ln, sh)

	sh.Println("radio simulator listening on", ln.Addr())
	sh.Run()
}
