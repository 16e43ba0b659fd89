package golednet_test

import (
	"net"

	. "github.com/pdf/golednet"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/mocks"
)

var _ = Describe("Commands", func() {
	var (
		mockDevice *mocks.Device
		mockLight  *mocks.Light

		red = common.RGBColor{R: 255}
	)

	BeforeEach(func() {
		mockDevice = new(mocks.Device)
		mockLight = new(mocks.Light)
	})

	Describe("power", func() {
		It("should set power", func() {
			mockDevice.On(`SetPower`, true).Return(nil).Once()
			resp, err := SetPower{On: true}.Execute(mockDevice)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(BeNil())
			mockDevice.AssertExpectations(GinkgoT())
		})

		It("should refresh before reporting power", func() {
			mockDevice.On(`Refresh`).Return(nil).Once()
			mockDevice.On(`Power`).Return(true)
			resp, err := GetPower{}.Execute(mockDevice)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`ON`))
			mockDevice.AssertExpectations(GinkgoT())
		})

		It("should report failure to refresh", func() {
			mockDevice.On(`Refresh`).Return(common.ErrTruncated).Once()
			_, err := GetPower{}.Execute(mockDevice)
			Expect(err).To(Equal(common.ErrTruncated))
		})
	})

	Describe("rgb", func() {
		It("should apply a color with brightness", func() {
			mockLight.On(`SetRGB`, common.Color(red), uint8(50)).Return(nil).Once()
			_, err := SetRGB{Color: red, Brightness: 50}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			mockLight.AssertExpectations(GinkgoT())
		})

		It("should report the current color", func() {
			mockLight.On(`Refresh`).Return(nil).Once()
			mockLight.On(`RGBColor`).Return(common.Color(red))
			resp, err := GetRGBColor{}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`rgb(255, 0, 0)`))
		})

		It("should report the raw registers", func() {
			dim := common.RGBColor{R: 128}
			mockLight.On(`Refresh`).Return(nil).Once()
			mockLight.On(`RGBExact`).Return(common.Color(dim))
			resp, err := GetRGBExact{}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`rgb(128, 0, 0)`))
		})

		It("should report brightness as bare digits", func() {
			mockLight.On(`Refresh`).Return(nil).Once()
			mockLight.On(`RGBBrightness`).Return(uint8(73))
			resp, err := GetRGBBrightness{}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`73`))
		})

		It("should refuse devices without a color channel", func() {
			_, err := SetRGB{Color: red, Brightness: 50}.Execute(mockDevice)
			Expect(err).To(Equal(common.ErrUnsupported))
			_, err = GetRGBColor{}.Execute(mockDevice)
			Expect(err).To(Equal(common.ErrUnsupported))
		})
	})

	Describe("cct", func() {
		It("should apply a temperature with brightness", func() {
			mockLight.On(`SetCCT`, uint16(4000), uint8(80)).Return(nil).Once()
			_, err := SetCCT{Kelvin: 4000, Brightness: 80}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			mockLight.AssertExpectations(GinkgoT())
		})

		It("should report temperature as bare digits", func() {
			mockLight.On(`Refresh`).Return(nil).Once()
			mockLight.On(`CCTTemperature`).Return(uint16(2800))
			resp, err := GetCCTTemperature{}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`2800`))
		})

		It("should refuse devices without a white channel", func() {
			_, err := SetCCT{Kelvin: 4000, Brightness: 80}.Execute(mockDevice)
			Expect(err).To(Equal(common.ErrUnsupported))
		})
	})

	Describe("mono", func() {
		It("should refuse devices without a mono channel", func() {
			_, err := SetMono{Brightness: 50}.Execute(mockLight)
			Expect(err).To(Equal(common.ErrUnsupported))
			_, err = GetMono{}.Execute(mockLight)
			Expect(err).To(Equal(common.ErrUnsupported))
		})
	})

	Describe("status", func() {
		It("should render the full device state on one line", func() {
			state := common.State{
				Power:           true,
				Mode:            common.ModeWhite,
				Color:           red,
				ColorBrightness: 100,
				Kelvin:          2800,
				WhiteBrightness: 80,
			}
			mockLight.On(`Refresh`).Return(nil).Once()
			mockLight.On(`Name`).Return(`LEDNET:HF-LPB100-ZJ200`)
			mockLight.On(`ID`).Return(`192.168.1.20:5577`)
			mockLight.On(`State`).Return(state)

			resp, err := Status{}.Execute(mockLight)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(
				`LEDNET:HF-LPB100-ZJ200 -- Address: 192.168.1.20:5577 Power: ON RGB: [rgb(255, 0, 0) @ 100%] CCT: [2800K @ 80%]`,
			))
		})

		It("should render OFF for powered-down devices", func() {
			mockDevice.On(`Refresh`).Return(nil).Once()
			mockDevice.On(`Name`).Return(`LEDNET`)
			mockDevice.On(`ID`).Return(`192.168.1.10:5577`)
			mockDevice.On(`State`).Return(common.State{})

			resp, err := Status{}.Execute(mockDevice)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(ContainSubstring(`Power: OFF`))
		})
	})

	Describe("address and port", func() {
		It("should report the device address", func() {
			mockDevice.On(`Address`).Return(addrIP(`192.168.1.10`))
			resp, err := GetAddress{}.Execute(mockDevice)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`192.168.1.10`))
		})

		It("should report the control port", func() {
			mockDevice.On(`Port`).Return(uint16(5577))
			resp, err := GetPort{}.Execute(mockDevice)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.String()).To(Equal(`5577`))
		})
	})
})

func addrIP(s string) net.IP {
	return net.ParseIP(s)
}
