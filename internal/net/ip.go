package net

import (
	"fmt"
	"log"
	"net"
)

// GetOutgoingIP finds the preferred local IP address to print in the share URL.
func GetOutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route out; look at the interfaces instead.
		return firstIPv4()
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

func firstIPv4() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String(), nil
		}
	}
	log.Println("[NET] No suitable local IP found, share URL may be wrong.")
	return "127.0.0.1", nil
}

// ShareURL turns a listen address such as ":8888" into the websocket URL a
// browser on the LAN can open.
func ShareURL(listenAddr string) (string, error) {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "", fmt.Errorf("bad listen address %q: %w", listenAddr, err)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		if host, err = GetOutgoingIP(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("ws://%s/ws", net.JoinHostPort(host, port)), nil
}

// Port extracts the numeric port of a listen address.
func Port(listenAddr string) (int, error) {
	_, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return 0, fmt.Errorf("bad listen address %q: %w", listenAddr, err)
	}
	p, err := net.LookupPort("tcp", port)
	if err != nil {
		return 0, fmt.Errorf("bad port in %q: %w", listenAddr, err)
	}
	return p, nil
}
