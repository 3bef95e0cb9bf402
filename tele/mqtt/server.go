// Package mqtt carries a deliberately small broker used to exercise
// the telemetry transport over a real socket in tests: it accepts
// device connections, acks publishes and records every message.
package mqtt

import (
	"net"

	"github.com/256dpi/gomqtt/packet"
	"github.com/256dpi/gomqtt/transport"
	"github.com/airberry/airberry/log2"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
)

type TestServer struct {
	ConnectCh chan *packet.Connect
	MsgCh     chan *packet.Message

	alive *alive.Alive
	log   *log2.Log
	ns    *transport.NetServer
	addr  string
}

func NewTestServer(log *log2.Log) (*TestServer, error) {
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Annotate(err, "mqtt test listen")
	}
	ts := &TestServer{
		ConnectCh: make(chan *packet.Connect, 4),
		MsgCh:     make(chan *packet.Message, 32),
		alive:     alive.NewAlive(),
		log:       log,
		ns:        transport.NewNetServer(listen),
		addr:      listen.Addr().String(),
	}
	go ts.acceptLoop()
	return ts, nil
}

func (ts *TestServer) URL() string { return "tcp://" + ts.addr }

func (ts *TestServer) Close() {
	ts.alive.Stop()
	_ = ts.ns.Close()
	ts.alive.Wait()
}

func (ts *TestServer) acceptLoop() {
	for {
		conn, err := ts.ns.Accept()
		if !ts.alive.IsRunning() {
			return
		}
		if err != nil {
			ts.log.Errorf("mqtt test accept err=%v", err)
			ts.alive.Stop()
			return
		}
		if !ts.alive.Add(1) {
			_ = conn.Close()
			return
		}
		go ts.processConn(conn)
	}
}

func (ts *TestServer) processConn(conn transport.Conn) {
	defer ts.alive.Done()
	defer conn.Close()
	for {
		pkt, err := conn.Receive()
		if err != nil {
			if ts.alive.IsRunning() {
				ts.log.Debugf("mqtt test recv err=%v", err)
			}
			return
		}
		switch p := pkt.(type) {
		case *packet.Connect:
			select {
			case ts.ConnectCh <- p:
			default:
			}
			ack := packet.NewConnack()
			ack.ReturnCode = packet.ConnectionAccepted
			if err = conn.Send(ack, false); err != nil {
				return
			}

		case *packet.Publish:
			ts.MsgCh <- p.Message.Copy()
			if p.Message.QOS == packet.QOSAtLeastOnce {
				pa := packet.NewPuback()
				pa.ID = p.ID
				if err = conn.Send(pa, false); err != nil {
					return
				}
			}

		case *packet.Subscribe:
			sa := packet.NewSuback()
			sa.ID = p.ID
			sa.ReturnCodes = make([]packet.QOS, len(p.Subscriptions))
			for i, sub := range p.Subscriptions {
				sa.ReturnCodes[i] = sub.QOS
			}
			if err = conn.Send(sa, false); err != nil {
				return
			}

		case *packet.Pingreq:
			if err = conn.Send(packet.NewPingresp(), false); err != nil {
				return
			}

		case *packet.Disconnect:
			return
		}
	}
}
